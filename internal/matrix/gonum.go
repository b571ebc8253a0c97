package matrix

import "gonum.org/v1/gonum/mat"

// ToDense converts m to a float64 gonum matrix.
func (m *Matrix) ToDense() *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense converts any gonum matrix to a Matrix, narrowing to float32.
//
// Panics if d has a zero dimension, as New does.
func FromDense(d mat.Matrix, name string) *Matrix {
	r, c := d.Dims()
	m := NewNamed(r, c, name)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = float32(d.At(i, j))
		}
	}
	return m
}
