package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(t *testing.T, code string) *Agent {
	t.Helper()
	bits, err := ParseBits(code)
	require.NoError(t, err)
	agent, err := NewAgent(bits)
	require.NoError(t, err)
	return agent
}

func TestAgentFirstMove(t *testing.T) {
	// With no opponent history only the bias bit decides.
	tests := []struct {
		code string
		want Move
	}{
		{"0", Cooperate},
		{"1", Defect},
		{"0111111", Cooperate},
		{"1000000", Defect},
	}

	for _, tt := range tests {
		agent := newTestAgent(t, tt.code)
		assert.Equal(t, tt.want, agent.Decide(nil, nil), "code %s", tt.code)
	}
}

func TestAgentTitForTat(t *testing.T) {
	// Weight 1 on the opponent's most recent move and nothing else copies
	// the opponent.
	agent := newTestAgent(t, "0001000")

	assert.Equal(t, Defect, agent.Decide([]Move{Cooperate}, []Move{Defect}))
	assert.Equal(t, Cooperate, agent.Decide([]Move{Defect}, []Move{Cooperate}))
	assert.Equal(t, Cooperate,
		agent.Decide([]Move{Defect, Defect}, []Move{Defect, Cooperate}))
}

func TestAgentIgnoresHistoryBeyondWindow(t *testing.T) {
	agent := newTestAgent(t, "0001000") // 3-column matrix

	self := []Move{Cooperate, Defect, Cooperate}
	other := []Move{Defect, Cooperate, Defect}
	want := agent.Decide(self, other)

	// Prepending identical or different old entries beyond the window
	// never changes the decision.
	for _, prefix := range [][]Move{
		{Cooperate},
		{Defect},
		{Defect, Defect, Cooperate},
	} {
		paddedSelf := append(append([]Move{}, prefix...), self...)
		paddedOther := append(append([]Move{}, prefix...), other...)
		assert.Equal(t, want, agent.Decide(paddedSelf, paddedOther), "prefix %v", prefix)
	}
}

func TestAgentSumZeroCooperates(t *testing.T) {
	// Rows 11/11 over histories (-1,+1)/(+1,-1) weight out to exactly 0.
	agent := newTestAgent(t, "01111")
	self := []Move{Cooperate, Defect}
	other := []Move{Defect, Cooperate}
	assert.Equal(t, Cooperate, agent.Decide(self, other))

	// All-zero weights are a degenerate zero sum too.
	zero := newTestAgent(t, "100")
	assert.Equal(t, Cooperate, zero.Decide([]Move{Defect}, []Move{Defect}))
}

func TestAgentNegativeSumDefects(t *testing.T) {
	// Weight on the opponent row only: a defecting opponent drives the
	// sum to -1.
	agent := newTestAgent(t, "010")
	assert.Equal(t, Defect, agent.Decide([]Move{Cooperate}, []Move{Defect}))
	assert.Equal(t, Cooperate, agent.Decide([]Move{Defect}, []Move{Cooperate}))
}

func TestAgentShortHistoryTruncatesMatrixLeft(t *testing.T) {
	// 3-column matrix 001/000: after a single round only the rightmost
	// column applies, which weights the opponent's last move.
	agent := newTestAgent(t, "0001000")
	assert.Equal(t, Defect, agent.Decide([]Move{Cooperate}, []Move{Defect}))

	// Matrix 100/000 leaves weight only on the column that is dropped for
	// short history, so the sum is 0 and the agent cooperates.
	leftWeighted := newTestAgent(t, "0100000")
	assert.Equal(t, Cooperate, leftWeighted.Decide([]Move{Cooperate}, []Move{Defect}))
}

func TestAgentZeroWidthMatrix(t *testing.T) {
	// A length-1 code has no matrix at all: after the opening round every
	// weighted sum is the empty sum, which resolves to cooperation.
	agent := newTestAgent(t, "1")
	assert.Equal(t, Defect, agent.Decide(nil, nil))
	assert.Equal(t, Cooperate, agent.Decide([]Move{Defect}, []Move{Defect}))
}

func TestAgentIsPure(t *testing.T) {
	agent := newTestAgent(t, "1011010")
	self := []Move{Cooperate, Defect, Defect}
	other := []Move{Defect, Defect, Cooperate}

	first := agent.Decide(self, other)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, agent.Decide(self, other))
	}
	// Inputs are not mutated.
	assert.Equal(t, []Move{Cooperate, Defect, Defect}, self)
	assert.Equal(t, []Move{Defect, Defect, Cooperate}, other)
}
