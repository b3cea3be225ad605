package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lox/prng/internal/registry"
)

type ListCmd struct{}

func (c *ListCmd) Run(globals *Globals) error {
	if _, _, err := globals.setup(); err != nil {
		return err
	}
	return writeEngineList(os.Stdout, registry.All())
}

func writeEngineList(w io.Writer, infos []registry.Info) error {
	t := newTable("ENGINE", "WIDTH", "STATE WORDS", "STATE BITS")
	for _, info := range infos {
		t.Row(
			info.Name,
			strconv.Itoa(info.Width),
			strconv.Itoa(info.Words),
			strconv.Itoa(info.Width*info.Words),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
