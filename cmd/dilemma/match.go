package main

import (
	"fmt"

	"github.com/lox/dilemma/internal/game"
	"github.com/lox/dilemma/internal/randutil"
	"github.com/lox/dilemma/internal/strategy"
)

type MatchCmd struct {
	CodeA string `arg:"" help:"Binary strategy code for player A"`
	CodeB string `arg:"" help:"Binary strategy code for player B"`

	Rounds int   `default:"16" help:"Rounds to play"`
	Jitter int   `default:"0" help:"Half-width of the random match length window"`
	Seed   int64 `default:"42" help:"Seed for the jitter draw"`
}

func (c *MatchCmd) Run() error {
	agentA, err := parseAgent(c.CodeA)
	if err != nil {
		return fmt.Errorf("player A: %w", err)
	}
	agentB, err := parseAgent(c.CodeB)
	if err != nil {
		return fmt.Errorf("player B: %w", err)
	}

	table := game.Conventional()
	match := game.New(game.Config{
		Rounds: c.Rounds,
		Jitter: c.Jitter,
		Rng:    randutil.New(c.Seed),
		Payoff: table.Score,
	})
	result := match.Play(agentA, agentB)

	fmt.Printf("%s vs %s over %d rounds\n\n", c.CodeA, c.CodeB, result.Rounds)
	fmt.Printf("%5s  %s  %s  %8s  %8s\n", "round", "A", "B", "pts A", "pts B")
	for i := range result.HistoryA {
		pointsA, pointsB := table.Score(result.HistoryA[i], result.HistoryB[i])
		fmt.Printf("%5d  %s  %s  %8g  %8g\n",
			i+1, result.HistoryA[i], result.HistoryB[i], pointsA, pointsB)
	}
	fmt.Printf("\nTotals: A=%g B=%g\n", result.TotalA, result.TotalB)
	return nil
}

func parseAgent(code string) (*strategy.Agent, error) {
	encoded, err := strategy.ParseBits(code)
	if err != nil {
		return nil, err
	}
	return strategy.NewAgent(encoded)
}
