package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dilemma/internal/randutil"
	"github.com/lox/dilemma/internal/strategy"
)

func newTestAgent(t *testing.T, code string) *strategy.Agent {
	t.Helper()
	bits, err := strategy.ParseBits(code)
	require.NoError(t, err)
	agent, err := strategy.NewAgent(bits)
	require.NoError(t, err)
	return agent
}

func TestMatchFixedRounds(t *testing.T) {
	match := New(Config{
		Rounds: 10,
		Payoff: Conventional().Score,
	})

	result := match.Play(newTestAgent(t, "0"), newTestAgent(t, "0"))
	assert.Equal(t, 10, result.Rounds)
	assert.Len(t, result.HistoryA, 10)
	assert.Len(t, result.HistoryB, 10)
}

func TestMatchKnownOutcome(t *testing.T) {
	// "0" always cooperates: its empty matrix makes every later sum the
	// zero tie. "1" defects the opening round and then falls back to the
	// same tie, cooperating from round two on.
	match := New(Config{
		Rounds: 3,
		Payoff: Conventional().Score,
	})

	result := match.Play(newTestAgent(t, "0"), newTestAgent(t, "1"))

	assert.Equal(t, []strategy.Move{strategy.Cooperate, strategy.Cooperate, strategy.Cooperate}, result.HistoryA)
	assert.Equal(t, []strategy.Move{strategy.Defect, strategy.Cooperate, strategy.Cooperate}, result.HistoryB)
	assert.Equal(t, 0.0+3+3, result.TotalA)
	assert.Equal(t, 5.0+3+3, result.TotalB)
}

func TestMatchSimultaneousDecisions(t *testing.T) {
	// Two tit-for-tat style agents with opposite biases must alternate
	// forever: each round's decision only sees the previous rounds, so
	// neither can react to the other's current move.
	match := New(Config{
		Rounds: 6,
		Payoff: Conventional().Score,
	})

	result := match.Play(newTestAgent(t, "0001000"), newTestAgent(t, "1001000"))

	wantA := []strategy.Move{
		strategy.Cooperate, strategy.Defect, strategy.Cooperate,
		strategy.Defect, strategy.Cooperate, strategy.Defect,
	}
	wantB := []strategy.Move{
		strategy.Defect, strategy.Cooperate, strategy.Defect,
		strategy.Cooperate, strategy.Defect, strategy.Cooperate,
	}
	assert.Equal(t, wantA, result.HistoryA)
	assert.Equal(t, wantB, result.HistoryB)
}

func TestMatchJitterRange(t *testing.T) {
	const rounds, jitter = 20, 5

	match := New(Config{
		Rounds: rounds,
		Jitter: jitter,
		Rng:    randutil.New(1),
		Payoff: Conventional().Score,
	})

	a := newTestAgent(t, "0")
	b := newTestAgent(t, "1")

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		result := match.Play(a, b)
		assert.GreaterOrEqual(t, result.Rounds, rounds-jitter)
		assert.Less(t, result.Rounds, rounds+jitter)
		assert.Len(t, result.HistoryA, result.Rounds)
		seen[result.Rounds] = true
	}
	// The draw actually varies.
	assert.Greater(t, len(seen), 1)
}

func TestMatchJitterDeterministic(t *testing.T) {
	play := func() []int {
		match := New(Config{
			Rounds: 20,
			Jitter: 5,
			Rng:    randutil.New(7),
			Payoff: Conventional().Score,
		})
		a := newTestAgent(t, "0")
		b := newTestAgent(t, "0")
		var counts []int
		for i := 0; i < 20; i++ {
			counts = append(counts, match.Play(a, b).Rounds)
		}
		return counts
	}

	assert.Equal(t, play(), play())
}

func TestMatchZeroJitterIgnoresRng(t *testing.T) {
	match := New(Config{
		Rounds: 4,
		Rng:    randutil.New(99),
		Payoff: Conventional().Score,
	})
	result := match.Play(newTestAgent(t, "0"), newTestAgent(t, "0"))
	assert.Equal(t, 4, result.Rounds)
}
