// Package config loads tournament run configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/dilemma/internal/game"
)

// RunConfig is the complete configuration for one tournament run.
type RunConfig struct {
	Tournament TournamentSettings `hcl:"tournament,block"`
	Payoff     *PayoffSettings    `hcl:"payoff,block"`
	Output     *OutputSettings    `hcl:"output,block"`
}

// TournamentSettings configures the enumeration and match loop.
type TournamentSettings struct {
	Competitors int   `hcl:"competitors"`
	Rounds      int   `hcl:"rounds"`
	Jitter      int   `hcl:"jitter,optional"`
	Seed        int64 `hcl:"seed,optional"`
	Workers     int   `hcl:"workers,optional"`
}

// PayoffSettings overrides the conventional payoff table.
type PayoffSettings struct {
	Temptation float64 `hcl:"temptation"`
	Reward     float64 `hcl:"reward"`
	Penalty    float64 `hcl:"penalty"`
	Sucker     float64 `hcl:"sucker"`
}

// Table converts the settings to a payoff table.
func (p *PayoffSettings) Table() game.Table {
	return game.Table{
		Temptation: p.Temptation,
		Reward:     p.Reward,
		Penalty:    p.Penalty,
		Sucker:     p.Sucker,
	}
}

// OutputSettings configures how results are reported.
type OutputSettings struct {
	Format string `hcl:"format,optional"`
	File   string `hcl:"file,optional"`
	Top    int    `hcl:"top,optional"`
}

// Default returns the configuration used when no file is supplied.
func Default() *RunConfig {
	return &RunConfig{
		Tournament: TournamentSettings{
			Competitors: 32,
			Rounds:      64,
			Jitter:      0,
			Seed:        42,
		},
		Output: &OutputSettings{
			Format: "summary",
			Top:    10,
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the
// defaults; missing optional blocks are filled from them.
func Load(filename string) (*RunConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var config RunConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	defaults := Default()
	if config.Output == nil {
		config.Output = defaults.Output
	}
	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}
	if config.Output.Top == 0 {
		config.Output.Top = defaults.Output.Top
	}

	if config.Tournament.Competitors <= 0 {
		return nil, fmt.Errorf("%s: tournament.competitors must be positive", filename)
	}
	if config.Tournament.Rounds <= 0 {
		return nil, fmt.Errorf("%s: tournament.rounds must be positive", filename)
	}

	return &config, nil
}

// PayoffTable returns the configured payoff table, falling back to the
// conventional one.
func (c *RunConfig) PayoffTable() game.Table {
	if c.Payoff == nil {
		return game.Conventional()
	}
	return c.Payoff.Table()
}
