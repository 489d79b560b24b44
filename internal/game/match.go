package game

import (
	rand "math/rand/v2"

	"github.com/lox/dilemma/internal/strategy"
)

// Config holds configuration for the match engine.
type Config struct {
	// Rounds is the number of rounds per match before jitter is applied.
	Rounds int
	// Jitter is the half-width of the random window applied to the round
	// count. 0 keeps matches at exactly Rounds. A positive jitter hides
	// the horizon from strategies that would otherwise exploit a known
	// final round.
	Jitter int
	// Rng is the randomness source for the jitter draw. It must be set
	// when Jitter is positive; passing it explicitly keeps every match
	// reproducible from its seed.
	Rng *rand.Rand
	// Payoff scores each round.
	Payoff Payoff
}

// Match plays repeated prisoner's dilemma rounds between two agents.
type Match struct {
	config Config
}

// New creates a match engine with the given configuration.
func New(config Config) *Match {
	return &Match{config: config}
}

// Result holds the outcome of a single match.
type Result struct {
	TotalA   float64
	TotalB   float64
	HistoryA []strategy.Move
	HistoryB []strategy.Move
	Rounds   int
}

// Play runs the match between a and b and returns the accumulated totals,
// the full move histories and the number of rounds actually played.
//
// Each round both agents decide against the histories as they stood at the
// start of the round; neither observes the current round's moves. Both
// histories grow by one entry per round, so they are always the same
// length.
func (m *Match) Play(a, b *strategy.Agent) Result {
	rounds := m.effectiveRounds()

	historyA := make([]strategy.Move, 0, rounds)
	historyB := make([]strategy.Move, 0, rounds)
	var totalA, totalB float64

	for round := 0; round < rounds; round++ {
		moveA := a.Decide(historyA, historyB)
		moveB := b.Decide(historyB, historyA)
		historyA = append(historyA, moveA)
		historyB = append(historyB, moveB)

		pointsA, pointsB := m.config.Payoff(moveA, moveB)
		totalA += pointsA
		totalB += pointsB
	}

	return Result{
		TotalA:   totalA,
		TotalB:   totalB,
		HistoryA: historyA,
		HistoryB: historyB,
		Rounds:   rounds,
	}
}

// effectiveRounds draws the round count for one match: uniform over
// [Rounds-Jitter, Rounds+Jitter) in absolute value when jitter is enabled,
// exactly Rounds otherwise.
func (m *Match) effectiveRounds() int {
	if m.config.Jitter <= 0 || m.config.Rng == nil {
		return m.config.Rounds
	}
	lo := m.config.Rounds - m.config.Jitter
	hi := m.config.Rounds + m.config.Jitter
	drawn := lo + m.config.Rng.IntN(hi-lo)
	if drawn < 0 {
		drawn = -drawn
	}
	return drawn
}
