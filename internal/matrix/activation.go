package matrix

import "math"

// sigmoid computes 1 / (1 + exp(-x)).
func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(-float64(x))))
}

// Sigmoid returns a new matrix with σ(x) = 1 / (1 + exp(-x)) applied
// elementwise.
func (m *Matrix) Sigmoid() *Matrix {
	result := NewNamed(m.rows, m.cols, "("+m.name+")_SigmoidActivation")
	for i, v := range m.data {
		result.data[i] = sigmoid(v)
	}
	return result
}

// SigmoidDerivative returns a new matrix with σ(x)·(1 − σ(x)) applied
// elementwise to the raw values of m (m holds pre-activations, not σ(x)).
func (m *Matrix) SigmoidDerivative() *Matrix {
	result := NewNamed(m.rows, m.cols, "("+m.name+")_SigmoidDerivative")
	for i, v := range m.data {
		s := sigmoid(v)
		result.data[i] = s - s*s
	}
	return result
}

// Softmax returns exp(x_i) / Σ_k exp(x_k) over a column vector.
//
// The maximum is subtracted before exponentiating, which leaves the result
// unchanged and keeps large inputs finite. Returns ErrInvalidShape unless
// m has exactly one column.
func (m *Matrix) Softmax() (*Matrix, error) {
	if m.cols != 1 {
		return nil, invalid("softmax of a 2D matrix", m)
	}
	result := NewNamed(m.rows, 1, "("+m.name+")_SoftMax")

	maxVal := m.data[0]
	for _, v := range m.data[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float64
	for i, v := range m.data {
		e := math.Exp(float64(v - maxVal))
		result.data[i] = float32(e)
		sum += e
	}
	for i := range result.data {
		result.data[i] = float32(float64(result.data[i]) / sum)
	}
	return result, nil
}
