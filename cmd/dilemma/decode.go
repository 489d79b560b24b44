package main

import (
	"fmt"

	"github.com/lox/dilemma/internal/strategy"
)

type DecodeCmd struct {
	Code string `arg:"" help:"Binary strategy code"`
}

func (c *DecodeCmd) Run() error {
	encoded, err := strategy.ParseBits(c.Code)
	if err != nil {
		return err
	}
	code, err := strategy.Decode(encoded)
	if err != nil {
		return err
	}

	opening := strategy.Cooperate
	if code.Bias() == 1 {
		opening = strategy.Defect
	}
	fmt.Printf("code:    %s\n", code)
	fmt.Printf("bias:    %d (opens with %s)\n", code.Bias(), opening)

	matrix := code.Matrix()
	fmt.Printf("matrix:  %d columns, most recent round rightmost\n", matrix.Cols())
	fmt.Printf("  opponent weights: %s\n", rowString(matrix, 0))
	fmt.Printf("  self weights:     %s\n", rowString(matrix, 1))
	return nil
}

func rowString(m strategy.Matrix, row int) string {
	s := "["
	for col := 0; col < m.Cols(); col++ {
		if col > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", m.At(row, col))
	}
	return s + "]"
}
