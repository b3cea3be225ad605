package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/lox/prng/cmd/prng/shared"
	"github.com/lox/prng/internal/config"
	"github.com/lox/prng/internal/dump"
)

type DumpCmd struct {
	EngineFlags `embed:""`

	Size       string `kong:"help='Bytes to generate before compression, e.g. 64MiB (default from config)'"`
	Codec      string `kong:"short='c',help='Compression codec (none|snappy|lz4|zstd)'"`
	Output     string `kong:"short='o',help='Output file, - for stdout (default <engine><ext>)'"`
	ChunkSize  int    `kong:"help='Bytes generated per write'"`
	NoProgress bool   `kong:"help='Do not draw a progress bar'"`
}

func (c *DumpCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}
	e, seed, err := c.open(cfg, logger)
	if err != nil {
		return err
	}
	opts, err := c.options(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	output := c.output(cfg, e.Name(), opts.Codec)
	if output == "-" {
		w := bufio.NewWriterSize(os.Stdout, 1<<16)
		if _, err := dump.Write(ctx, w, e, opts); err != nil {
			return err
		}
		return w.Flush()
	}

	if !c.NoProgress && !globals.Plain {
		bar := newProgressBar(os.Stderr)
		opts.Progress = bar.update
		defer bar.finish()
	}

	logger.Info().
		Str("engine", e.Name()).
		Uint64("seed", seed).
		Str("codec", string(opts.Codec)).
		Int64("bytes", opts.Size).
		Str("output", output).
		Msg("Dumping")
	return dump.WriteFile(ctx, output, e, opts, logger)
}

func (c *DumpCmd) options(cfg *config.Config) (dump.Options, error) {
	sizeText := c.Size
	if sizeText == "" {
		sizeText = cfg.Dump.Size
	}
	size, err := dump.ParseSize(sizeText)
	if err != nil {
		return dump.Options{}, err
	}

	codecName := c.Codec
	if codecName == "" {
		codecName = cfg.Dump.Codec
	}
	codec, err := dump.ParseCodec(codecName)
	if err != nil {
		return dump.Options{}, err
	}

	chunk := c.ChunkSize
	if chunk == 0 {
		chunk = cfg.Dump.ChunkSize
	}
	return dump.Options{Size: size, Codec: codec, ChunkSize: chunk}, nil
}

func (c *DumpCmd) output(cfg *config.Config, engine string, codec dump.Codec) string {
	switch {
	case c.Output != "":
		return c.Output
	case cfg.Dump.Output != "":
		return cfg.Dump.Output
	default:
		return defaultOutput(engine, codec)
	}
}

// defaultOutput names the dump file after the engine, e.g.
// xoshiro128ss.bin.zst.
func defaultOutput(engine string, codec dump.Codec) string {
	name := strings.NewReplacer("**", "ss", "+", "p").Replace(engine)
	return name + ".bin" + codec.Extension()
}

// progressBar draws a bubbles progress bar on a plain writer, redrawing at
// most every redrawInterval.
type progressBar struct {
	mu       sync.Mutex
	w        io.Writer
	bar      progress.Model
	last     time.Time
	drawn    bool
	interval time.Duration
}

const redrawInterval = 100 * time.Millisecond

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{
		w:        w,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		interval: redrawInterval,
	}
}

func (p *progressBar) update(written, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if written < total && now.Sub(p.last) < p.interval {
		return
	}
	p.last = now

	pct := 1.0
	if total > 0 {
		pct = float64(written) / float64(total)
	}
	fmt.Fprintf(p.w, "\r%s %s", p.bar.ViewAs(pct), humanize.IBytes(uint64(written)))
	p.drawn = true
}

func (p *progressBar) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn {
		fmt.Fprintln(p.w)
	}
}
