package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/prng/cmd/prng/shared"
	"github.com/lox/prng/internal/fileutil"
	"github.com/lox/prng/internal/randutil"
	"github.com/lox/prng/internal/registry"
	"github.com/lox/prng/internal/statistics"
	"github.com/rs/zerolog"
)

type StatsCmd struct {
	EngineFlags `embed:""`

	All     bool   `kong:"help='Test every registered engine'"`
	Samples int    `kong:"short='n',help='Samples per stream (default from config)'"`
	Streams int    `kong:"help='Independent streams run in parallel (default from config)'"`
	Buckets int    `kong:"help='Histogram buckets for the chi-square test (default from config)'"`
	JSON    string `kong:"name='json',help='Also write a JSON report to this file'"`
}

// engineReport is one row of the stats output.
type engineReport struct {
	Engine    string        `json:"engine"`
	Seed      uint64        `json:"seed"`
	Streams   int           `json:"streams"`
	Samples   int           `json:"samples"`
	Mean      float64       `json:"mean"`
	StdDev    float64       `json:"std_dev"`
	CILow     float64       `json:"ci95_low"`
	CIHigh    float64       `json:"ci95_high"`
	Min       float64       `json:"min"`
	Max       float64       `json:"max"`
	ChiSquare float64       `json:"chi_square"`
	Critical  float64       `json:"chi_square_critical"`
	Pass      bool          `json:"pass"`
	Failure   string        `json:"failure,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
}

func (c *StatsCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}

	samples := firstPositive(c.Samples, cfg.Stats.Samples)
	streams := firstPositive(c.Streams, cfg.Stats.Streams)
	buckets := firstPositive(c.Buckets, cfg.Stats.Buckets)
	seed := c.seed(cfg)

	names := []string{c.name(cfg)}
	if c.All {
		names = registry.Names()
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	reports := make([]engineReport, 0, len(names))
	for _, name := range names {
		report, err := runStats(ctx, name, seed, streams, samples, buckets, logger)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if err := writeStatsTable(os.Stdout, reports); err != nil {
		return err
	}

	if c.JSON != "" {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := fileutil.WriteFileAtomic(c.JSON, append(data, '\n'), 0644); err != nil {
			return err
		}
		logger.Info().Str("path", c.JSON).Msg("Report written")
	}

	for _, r := range reports {
		if !r.Pass {
			return fmt.Errorf("%s failed: %s", r.Engine, r.Failure)
		}
	}
	return nil
}

// runStats samples one engine on streams independently seeded instances.
func runStats(ctx context.Context, name string, seed uint64, streams, samples, buckets int, logger zerolog.Logger) (engineReport, error) {
	if _, err := registry.Lookup(name); err != nil {
		return engineReport{}, err
	}

	factory := func(stream int) (registry.Engine, error) {
		return registry.New(name, randutil.Derive(seed, stream))
	}

	start := time.Now()
	stats, err := statistics.Collect(ctx, factory, streams, samples, buckets)
	if err != nil {
		return engineReport{}, fmt.Errorf("%s: %w", name, err)
	}
	duration := time.Since(start)

	lo, hi := stats.ConfidenceInterval95()
	report := engineReport{
		Engine:    name,
		Seed:      seed,
		Streams:   streams,
		Samples:   stats.Samples,
		Mean:      stats.Mean(),
		StdDev:    stats.StdDev(),
		CILow:     lo,
		CIHigh:    hi,
		Min:       stats.Min,
		Max:       stats.Max,
		ChiSquare: stats.ChiSquare(),
		Critical:  stats.ChiSquareCritical(),
		Pass:      true,
		Duration:  duration,
	}
	if err := stats.Validate(); err != nil {
		report.Pass = false
		report.Failure = err.Error()
	}

	logger.Debug().
		Str("engine", name).
		Int("samples", report.Samples).
		Float64("mean", report.Mean).
		Float64("chi_square", report.ChiSquare).
		Dur("duration", duration).
		Msg("Statistics collected")
	return report, nil
}

func writeStatsTable(w io.Writer, reports []engineReport) error {
	t := newTable("ENGINE", "SAMPLES", "MEAN", "STDDEV", "95% CI", "MIN", "MAX", "CHI²", "CRITICAL", "RESULT")
	for _, r := range reports {
		result := passStyle.Render("PASS")
		if !r.Pass {
			result = failStyle.Render("FAIL")
		}
		t.Row(
			r.Engine,
			fmt.Sprintf("%d", r.Samples),
			fmt.Sprintf("%.6f", r.Mean),
			fmt.Sprintf("%.6f", r.StdDev),
			fmt.Sprintf("[%.6f, %.6f]", r.CILow, r.CIHigh),
			fmt.Sprintf("%.2e", r.Min),
			fmt.Sprintf("%.8f", r.Max),
			fmt.Sprintf("%.2f", r.ChiSquare),
			fmt.Sprintf("%.2f", r.Critical),
			result,
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
