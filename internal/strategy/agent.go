package strategy

import "fmt"

// Agent is one player in the iterated prisoner's dilemma. It carries no
// state of its own: Decide is a pure function of the supplied histories
// and the agent's fixed code, so a single agent can be shared across
// matches and goroutines.
type Agent struct {
	code Code
}

// NewAgent decodes bits into a playable agent. It fails with
// *InvalidEncodingError when the bit count is even.
func NewAgent(bits Bits) (*Agent, error) {
	code, err := Decode(bits)
	if err != nil {
		return nil, err
	}
	return &Agent{code: code}, nil
}

// Code returns the agent's decoded strategy.
func (a *Agent) Code() Code { return a.code }

func (a *Agent) String() string {
	return fmt.Sprintf("Agent(%s)", a.code)
}

// Decide returns the agent's next move. On the first round only the bias
// bit matters. Afterwards the most recent moves of both players are
// weighted by the rightmost columns of the decision matrix and the sign of
// the total picks the move: a non-negative sum cooperates, a negative sum
// defects. History older than the matrix width never influences the
// decision.
func (a *Agent) Decide(self, other []Move) Move {
	if len(other) == 0 {
		if a.code.bias == 0 {
			return Cooperate
		}
		return Defect
	}

	window := min(len(self), a.code.matrix.Cols())
	weights := a.code.matrix.Tail(window)
	recentOther := other[len(other)-window:]
	recentSelf := self[len(self)-window:]

	sum := 0
	for col := 0; col < window; col++ {
		sum += int(weights.At(0, col)) * int(recentOther[col])
		sum += int(weights.At(1, col)) * int(recentSelf[col])
	}
	if sum >= 0 {
		return Cooperate
	}
	return Defect
}
