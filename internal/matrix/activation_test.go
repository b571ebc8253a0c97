package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSigmoid(t *testing.T) {
	m := mustRows(t, [][]float32{{0, 2}, {-2, 10}})
	s := m.Sigmoid()

	assert.InDelta(t, 0.5, s.At(0, 0), 1e-6)
	assert.InDelta(t, 1/(1+math.Exp(-2)), s.At(0, 1), 1e-6)
	assert.InDelta(t, 1/(1+math.Exp(2)), s.At(1, 0), 1e-6)

	// Input unchanged.
	assert.Equal(t, float32(2), m.At(0, 1))
}

func TestSigmoid_OpenUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	m := matrix.New(10, 10).SetUniform(rng, -15, 15)
	for _, v := range m.Sigmoid().Data() {
		assert.Greater(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestSigmoidDerivative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := matrix.New(4, 5).SetUniform(rng, -6, 6)

	s := m.Sigmoid()
	d := m.SigmoidDerivative()

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			sv := s.At(i, j)
			assert.InDelta(t, sv*(1-sv), d.At(i, j), 1e-6)
		}
	}

	// Peak at zero.
	zero := matrix.New(1, 1).SigmoidDerivative()
	assert.InDelta(t, 0.25, zero.At(0, 0), 1e-7)
}

func TestSoftmax(t *testing.T) {
	m := mustRows(t, [][]float32{{1}, {2}, {3}})

	s, err := m.Softmax()
	require.NoError(t, err)

	denom := math.Exp(1) + math.Exp(2) + math.Exp(3)
	assert.InDelta(t, math.Exp(1)/denom, s.At(0, 0), 1e-6)
	assert.InDelta(t, math.Exp(3)/denom, s.At(2, 0), 1e-6)
}

func TestSoftmax_SumsToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, n := range []int{1, 2, 7, 64} {
		s, err := matrix.New(n, 1).SetUniform(rng, -50, 50).Softmax()
		require.NoError(t, err)

		values := make([]float64, n)
		for i, v := range s.Data() {
			values[i] = float64(v)
		}
		assert.InDelta(t, 1.0, floats.Sum(values), 1e-5, "n=%d", n)
	}
}

func TestSoftmax_LargeInputsStayFinite(t *testing.T) {
	m := mustRows(t, [][]float32{{1000}, {1000}})
	s, err := m.Softmax()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.At(0, 0), 1e-6)
	assert.InDelta(t, 0.5, s.At(1, 0), 1e-6)
}

func TestSoftmax_RejectsNonColumn(t *testing.T) {
	for _, shape := range [][2]int{{1, 2}, {3, 3}} {
		_, err := matrix.New(shape[0], shape[1]).Softmax()
		assert.ErrorIs(t, err, matrix.ErrInvalidShape, "shape %v", shape)
		assert.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}
