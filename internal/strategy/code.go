// Package strategy implements the bit-encoded bounded-memory strategies
// played in the iterated prisoner's dilemma.
//
// A strategy is identified by an odd-length bit string. The first bit (the
// bias) fixes the opening move; the remaining bits form a 2-row weight
// matrix that maps the most recent moves of both players to the next move
// through a weighted-sum sign rule. Because behaviour is purely data
// driven, every strategy in the search space is an instance of the same
// decision function.
package strategy

import (
	"fmt"
	"strings"
)

// Move is a single round's action. Cooperation and defection are encoded
// as +1 and -1 so history entries can feed the weighted sum directly.
type Move int8

const (
	Cooperate Move = 1
	Defect    Move = -1
)

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "C"
	case Defect:
		return "D"
	}
	return fmt.Sprintf("Move(%d)", int8(m))
}

// Bits is an ordered sequence of binary digits.
type Bits []uint8

// ParseBits converts a binary string such as "0001000" into Bits.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("invalid binary digit %q at position %d", s[i], i)
		}
	}
	return bits, nil
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// InvalidEncodingError reports a strategy encoding with an even number of
// bits. A valid encoding carries one bias bit plus two equal-length matrix
// rows, so its total length is always odd.
type InvalidEncodingError struct {
	Length int
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("strategy encoding must have an odd number of bits, got %d", e.Length)
}

// Matrix is the fixed-size 2-row weight table of a strategy. The backing
// array is row-major and never resized after construction.
type Matrix struct {
	cols  int
	cells []int8
}

func newMatrix(bits Bits) Matrix {
	cells := make([]int8, len(bits))
	for i, b := range bits {
		cells[i] = int8(b)
	}
	return Matrix{cols: len(bits) / 2, cells: cells}
}

// Cols returns the number of columns, i.e. the memory depth of the
// strategy.
func (m Matrix) Cols() int { return m.cols }

// At returns the weight at row (0 or 1) and column.
func (m Matrix) At(row, col int) int8 { return m.cells[row*m.cols+col] }

// Tail returns the last n columns of the matrix. When history is shorter
// than the matrix width the oldest columns are dropped, keeping the most
// recent rounds aligned with the rightmost weights.
func (m Matrix) Tail(n int) Matrix {
	if n >= m.cols {
		return m
	}
	cells := make([]int8, 2*n)
	for row := 0; row < 2; row++ {
		copy(cells[row*n:(row+1)*n], m.cells[row*m.cols+m.cols-n:(row+1)*m.cols])
	}
	return Matrix{cols: n, cells: cells}
}

// Code is the decoded form of a strategy encoding: the opening-move bias
// plus the 2x(b-1)/2 decision matrix. Codes are immutable once decoded.
type Code struct {
	bits   Bits
	bias   uint8
	matrix Matrix
}

// Decode splits an odd-length bit sequence into a bias bit and a decision
// matrix. The first bit is the bias; the remaining bits fill the matrix
// row-major, first half into row 0 and second half into row 1. Even-length
// sequences fail with *InvalidEncodingError.
func Decode(bits Bits) (Code, error) {
	if len(bits)%2 == 0 {
		return Code{}, &InvalidEncodingError{Length: len(bits)}
	}
	return Code{
		bits:   append(Bits(nil), bits...),
		bias:   bits[0],
		matrix: newMatrix(bits[1:]),
	}, nil
}

// Bias returns the opening-move bit: 0 cooperates, 1 defects.
func (c Code) Bias() uint8 { return c.bias }

// Matrix returns the decision matrix.
func (c Code) Matrix() Matrix { return c.matrix }

// Bits returns a copy of the full encoding.
func (c Code) Bits() Bits { return append(Bits(nil), c.bits...) }

// String returns the encoding as a binary string.
func (c Code) String() string { return c.bits.String() }
