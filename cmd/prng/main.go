package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	List    ListCmd          `cmd:"" help:"List the available engines"`
	Sample  SampleCmd        `cmd:"" help:"Print values drawn from an engine"`
	Shuffle ShuffleCmd       `cmd:"" help:"Shuffle lines read from stdin"`
	Dump    DumpCmd          `cmd:"" help:"Write the raw output stream of an engine to a file"`
	Stats   StatsCmd         `cmd:"" help:"Check engine output against the uniform distribution"`
	Seed    SeedCmd          `cmd:"" help:"Print seeds gathered from system entropy"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("prng"),
		kong.Description("Small fast pseudo-random number generators"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
