// Package game implements the two-player match engine for the iterated
// prisoner's dilemma.
package game

import (
	"fmt"

	"github.com/lox/dilemma/internal/strategy"
)

// Payoff maps one round's pair of moves to the points awarded to each
// player, in the same order as the moves.
type Payoff func(a, b strategy.Move) (float64, float64)

// Table is a prisoner's dilemma payoff table.
type Table struct {
	Temptation float64 // defecting against a cooperator
	Reward     float64 // mutual cooperation
	Penalty    float64 // mutual defection
	Sucker     float64 // cooperating against a defector
}

// Conventional returns the payoff table most commonly used in the
// literature: T=5, R=3, P=1, S=0.
func Conventional() Table {
	return Table{Temptation: 5, Reward: 3, Penalty: 1, Sucker: 0}
}

// Score awards points for one round of play.
func (t Table) Score(a, b strategy.Move) (float64, float64) {
	switch {
	case a == strategy.Cooperate && b == strategy.Cooperate:
		return t.Reward, t.Reward
	case a == strategy.Defect && b == strategy.Defect:
		return t.Penalty, t.Penalty
	case a == strategy.Cooperate:
		return t.Sucker, t.Temptation
	default:
		return t.Temptation, t.Sucker
	}
}

// Validate reports whether the table satisfies the conventional ordering
// T > R > P > S. Matches still run with a table outside this ordering, the
// results just lose their game-theoretic meaning, so callers should treat
// a failure here as a warning.
func (t Table) Validate() error {
	if t.Temptation > t.Reward && t.Reward > t.Penalty && t.Penalty > t.Sucker {
		return nil
	}
	return fmt.Errorf("payoff ordering should be T > R > P > S, got T=%g R=%g P=%g S=%g",
		t.Temptation, t.Reward, t.Penalty, t.Sucker)
}
