package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Run    RunCmd    `cmd:"" help:"Run a full round-robin tournament over the strategy space"`
	Match  MatchCmd  `cmd:"" help:"Play a single match between two strategy codes"`
	Decode DecodeCmd `cmd:"" help:"Show the bias and decision matrix of a strategy code"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dilemma"),
		kong.Description("Exhaustive iterated prisoner's dilemma tournaments over bit-encoded strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
