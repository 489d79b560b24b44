package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		bits, err := ParseBits("0001000")
		require.NoError(t, err)
		assert.Equal(t, Bits{0, 0, 0, 1, 0, 0, 0}, bits)
		assert.Equal(t, "0001000", bits.String())
	})

	t.Run("invalid digit", func(t *testing.T) {
		_, err := ParseBits("0102")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "position 3")
	})

	t.Run("empty", func(t *testing.T) {
		bits, err := ParseBits("")
		require.NoError(t, err)
		assert.Empty(t, bits)
	})
}

func TestDecode(t *testing.T) {
	t.Run("shape for odd lengths", func(t *testing.T) {
		for _, length := range []int{1, 3, 5, 7, 9, 17} {
			bits := make(Bits, length)
			code, err := Decode(bits)
			require.NoError(t, err, "length %d", length)
			assert.Equal(t, (length-1)/2, code.Matrix().Cols(), "length %d", length)
		}
	})

	t.Run("even lengths fail", func(t *testing.T) {
		for _, length := range []int{0, 2, 4, 6, 8} {
			_, err := Decode(make(Bits, length))
			require.Error(t, err, "length %d", length)

			var encErr *InvalidEncodingError
			require.True(t, errors.As(err, &encErr), "length %d", length)
			assert.Equal(t, length, encErr.Length)
		}
	})

	t.Run("row-major fill", func(t *testing.T) {
		// 8 as a 7-digit code: bias 0, row 0 = 001, row 1 = 000.
		bits, err := ParseBits("0001000")
		require.NoError(t, err)
		code, err := Decode(bits)
		require.NoError(t, err)

		assert.Equal(t, uint8(0), code.Bias())
		matrix := code.Matrix()
		require.Equal(t, 3, matrix.Cols())
		assert.Equal(t, []int8{0, 0, 1}, rowOf(matrix, 0))
		assert.Equal(t, []int8{0, 0, 0}, rowOf(matrix, 1))
	})

	t.Run("string round trip", func(t *testing.T) {
		for _, s := range []string{"0", "1", "101", "0001000", "111111111"} {
			bits, err := ParseBits(s)
			require.NoError(t, err)
			code, err := Decode(bits)
			require.NoError(t, err)
			assert.Equal(t, s, code.String())
		}
	})
}

func TestMatrixTail(t *testing.T) {
	bits, err := ParseBits("110010") // rows 110 / 010
	require.NoError(t, err)
	m := newMatrix(bits)
	require.Equal(t, 3, m.Cols())

	tail := m.Tail(2)
	require.Equal(t, 2, tail.Cols())
	assert.Equal(t, []int8{1, 0}, rowOf(tail, 0))
	assert.Equal(t, []int8{1, 0}, rowOf(tail, 1))

	tail = m.Tail(1)
	require.Equal(t, 1, tail.Cols())
	assert.Equal(t, []int8{0}, rowOf(tail, 0))
	assert.Equal(t, []int8{0}, rowOf(tail, 1))

	// Asking for at least the full width returns the matrix unchanged.
	assert.Equal(t, m, m.Tail(3))
	assert.Equal(t, m, m.Tail(10))
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "C", Cooperate.String())
	assert.Equal(t, "D", Defect.String())
}

func rowOf(m Matrix, row int) []int8 {
	out := make([]int8, m.Cols())
	for col := 0; col < m.Cols(); col++ {
		out[col] = m.At(row, col)
	}
	return out
}
