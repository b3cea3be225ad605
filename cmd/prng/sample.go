package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lox/prng/internal/registry"
	"github.com/lox/prng/random"
)

type SampleCmd struct {
	EngineFlags `embed:""`

	Count  int    `kong:"short='n',default='10',help='Number of values'"`
	Format string `kong:"short='f',default='raw',enum='raw,hex,float,range',help='Output format (raw|hex|float|range)'"`
	Lo     int64  `kong:"default='0',help='Lower bound for --format=range'"`
	Hi     int64  `kong:"default='100',help='Upper bound for --format=range'"`
	Closed bool   `kong:"help='Include the upper bound for --format=range'"`
}

func (c *SampleCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}
	e, _, err := c.open(cfg, logger)
	if err != nil {
		return err
	}
	return c.write(os.Stdout, e)
}

func (c *SampleCmd) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.Format != "range" {
		return nil
	}
	if c.Closed && c.Lo > c.Hi {
		return fmt.Errorf("empty range [%d, %d]", c.Lo, c.Hi)
	}
	if !c.Closed && c.Lo >= c.Hi {
		return fmt.Errorf("empty range [%d, %d)", c.Lo, c.Hi)
	}
	return nil
}

func (c *SampleCmd) write(w io.Writer, e registry.Engine) error {
	if err := c.validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	hexWidth := e.Width() / 4
	for range c.Count {
		var line string
		switch c.Format {
		case "hex":
			line = fmt.Sprintf("%0*X", hexWidth, e.Rand())
		case "float":
			line = strconv.FormatFloat(e.Float(), 'f', -1, 64)
		case "range":
			var v int64
			if c.Closed {
				v = random.RangeRClose[uint64](e, c.Lo, c.Hi)
			} else {
				v = random.RangeROpen[uint64](e, c.Lo, c.Hi)
			}
			line = strconv.FormatInt(v, 10)
		default:
			line = strconv.FormatUint(e.Rand(), 10)
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
