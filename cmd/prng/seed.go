package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"
	"github.com/lox/prng/internal/entropy"
	"github.com/lox/prng/random"
)

type SeedCmd struct {
	Count int  `kong:"short='n',default='1',help='Number of seeds'"`
	Bits  int  `kong:"default='64',help='Seed width in bits (32|64)'"`
	Hex   bool `kong:"help='Print seeds in hexadecimal'"`
}

func (c *SeedCmd) Run(globals *Globals) error {
	if _, _, err := globals.setup(); err != nil {
		return err
	}
	return c.write(os.Stdout, entropy.New(quartz.NewReal()))
}

func (c *SeedCmd) write(w io.Writer, src random.EntropySource) error {
	if c.Bits != 32 && c.Bits != 64 {
		return fmt.Errorf("--bits must be 32 or 64, got %d", c.Bits)
	}

	bw := bufio.NewWriter(w)
	for range c.Count {
		var v uint64
		if c.Bits == 32 {
			v = uint64(src.Seed32())
		} else {
			v = src.Seed64()
		}

		var err error
		if c.Hex {
			_, err = fmt.Fprintf(bw, "0x%0*X\n", c.Bits/4, v)
		} else {
			_, err = fmt.Fprintln(bw, v)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
