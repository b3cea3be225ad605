package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lox/prng/internal/registry"
	"github.com/lox/prng/random"
)

type ShuffleCmd struct {
	EngineFlags `embed:""`

	First int `kong:"help='Only shuffle the first N lines, keeping the rest in order (0 = all)'"`
}

func (c *ShuffleCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}
	e, _, err := c.open(cfg, logger)
	if err != nil {
		return err
	}

	n, err := shuffleLines(os.Stdin, os.Stdout, e, c.First)
	if err != nil {
		return err
	}
	logger.Debug().Int("lines", n).Msg("Shuffled")
	return nil
}

// shuffleLines reads r line by line and writes the lines to w in shuffled
// order. With first > 0 only that many leading lines are permuted.
func shuffleLines(r io.Reader, w io.Writer, e registry.Engine, first int) (int, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	switch {
	case first < 0:
		return 0, fmt.Errorf("--first must be non-negative, got %d", first)
	case first == 0:
		random.Shuffle[uint64](e, lines)
	default:
		random.ShuffleN[uint64](e, min(first, len(lines)), lines)
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return 0, err
		}
	}
	return len(lines), bw.Flush()
}
