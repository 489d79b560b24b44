package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/lox/dilemma/internal/config"
	"github.com/lox/dilemma/internal/tournament"
)

type RunCmd struct {
	Config string `type:"path" help:"HCL configuration file"`

	// Flags override the corresponding configuration file values when set.
	Competitors int   `help:"Number of strategies to enumerate"`
	Rounds      int   `help:"Rounds per match"`
	Jitter      int   `default:"-1" help:"Half-width of the random match length window (0 disables)"`
	Seed        int64 `help:"Seed for jittered match lengths"`
	Workers     int   `help:"Concurrent matches (0 uses all CPUs)"`

	Output     string `help:"Output format: json, summary or both"`
	OutputFile string `type:"path" help:"Write JSON results to this file"`
	Top        int    `help:"Standings entries to display"`

	NoProgress bool `help:"Disable progress output"`
	Plain      bool `help:"Force plain dot progress instead of the progress bar"`
	Debug      bool `help:"Enable debug logging"`
}

func (c *RunCmd) Run() error {
	logger := newLogger(c.Debug)

	base := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		base = loaded
	}

	settings := base.Tournament
	if c.Competitors > 0 {
		settings.Competitors = c.Competitors
	}
	if c.Rounds > 0 {
		settings.Rounds = c.Rounds
	}
	if c.Jitter >= 0 {
		settings.Jitter = c.Jitter
	}
	if c.Seed != 0 {
		settings.Seed = c.Seed
	}
	if c.Workers > 0 {
		settings.Workers = c.Workers
	}

	output := *base.Output
	if c.Output != "" {
		switch tournament.OutputFormat(c.Output) {
		case tournament.FormatJSON, tournament.FormatSummary, tournament.FormatBoth:
		default:
			return fmt.Errorf("invalid output format %q", c.Output)
		}
		output.Format = c.Output
	}
	if c.OutputFile != "" {
		output.File = c.OutputFile
	}
	if c.Top > 0 {
		output.Top = c.Top
	}

	table := base.PayoffTable()
	if err := table.Validate(); err != nil {
		logger.Warn("payoff table is not a prisoner's dilemma", "err", err)
	}

	var reporter tournament.ProgressReporter
	if !c.NoProgress {
		if useBar(c.Plain) {
			reporter = NewBarProgress()
		} else {
			reporter = NewDotProgress(os.Stdout)
		}
	}

	t, err := tournament.New(tournament.Config{
		Competitors: settings.Competitors,
		Rounds:      settings.Rounds,
		Jitter:      settings.Jitter,
		Seed:        settings.Seed,
		Payoff:      table.Score,
		Workers:     settings.Workers,
		Logger:      logger,
		Reporter:    reporter,
	})
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("interrupted, stopping")
		cancel()
	}()

	result, err := t.Run(runCtx)
	if err != nil {
		return err
	}

	rep := &tournament.Reporter{
		Format: tournament.OutputFormat(output.Format),
		File:   output.File,
		Top:    output.Top,
	}
	return rep.Report(result)
}

// useBar picks the animated progress bar when stdout looks like a capable
// terminal, the dot reporter otherwise.
func useBar(plain bool) bool {
	if plain {
		return false
	}
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}
