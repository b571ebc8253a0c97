package matrix_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestNew_ZeroFilled(t *testing.T) {
	m := matrix.New(2, 3)

	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, matrix.DefaultName, m.Name())
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}
}

func TestNew_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { matrix.New(0, 3) })
	assert.Panics(t, func() { matrix.New(3, 0) })
	assert.Panics(t, func() { matrix.New(-1, 1) })
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	m, err := matrix.FromSlice(2, 3, data)
	require.NoError(t, err)

	assert.Equal(t, float32(1), m.At(0, 0))
	assert.Equal(t, float32(3), m.At(0, 2))
	assert.Equal(t, float32(4), m.At(1, 0))

	// Input is copied.
	data[0] = 100
	assert.Equal(t, float32(1), m.At(0, 0))

	_, err = matrix.FromSlice(2, 3, []float32{1, 2})
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.FromSlice(0, 3, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestFromRows(t *testing.T) {
	m := mustRows(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, float32(6), m.At(2, 1))

	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.FromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestSetGet(t *testing.T) {
	m := matrix.New(2, 2)
	m.Set(1, 0, 7.5)
	assert.Equal(t, float32(7.5), m.At(1, 0))
	assert.Equal(t, float32(0), m.At(0, 1))
}

func TestClone_IsDeep(t *testing.T) {
	a := matrix.NewNamed(2, 2, "A").SetOnes()
	b := a.Clone()

	assert.Equal(t, "(A)_copy", b.Name())
	assert.True(t, a.Equal(b, 0))

	b.Set(0, 0, 42)
	assert.Equal(t, float32(1), a.At(0, 0), "clone must not alias the source")
}

func TestFillers(t *testing.T) {
	m := matrix.New(2, 3)

	m.SetOnes()
	for _, v := range m.Data() {
		assert.Equal(t, float32(1), v)
	}

	m.SetZeros()
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}

	t.Run("identity on non-square", func(t *testing.T) {
		m.SetIdentity()
		expected := mustRows(t, [][]float32{{1, 0, 0}, {0, 1, 0}})
		assert.True(t, m.Equal(expected, 0), m.String())
	})

	t.Run("uniform range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		u := matrix.New(20, 20).SetUniform(rng, -1, 1)
		for _, v := range u.Data() {
			assert.GreaterOrEqual(t, v, float32(-1))
			assert.Less(t, v, float32(1))
		}
	})

	t.Run("uniform is reproducible", func(t *testing.T) {
		a := matrix.New(3, 3).SetUniform(rand.New(rand.NewSource(7)), -1, 1)
		b := matrix.New(3, 3).SetUniform(rand.New(rand.NewSource(7)), -1, 1)
		assert.True(t, a.Equal(b, 0))
	})
}

func TestFillers_Chain(t *testing.T) {
	m := matrix.New(2, 2).SetName("chained").SetOnes()
	assert.Equal(t, "chained", m.Name())
	assert.Equal(t, float32(1), m.At(1, 1))
}

func TestString(t *testing.T) {
	m := mustRows(t, [][]float32{{1, 2}, {3, 4.5}}).SetName("A")

	expected := "A of shape: (2,2) is\n1 2\n3 4.5\n"
	assert.Equal(t, expected, m.String())

	lines := strings.Split(strings.TrimSuffix(matrix.Ones(3, 4).String(), "\n"), "\n")
	assert.Len(t, lines, 4)
}
