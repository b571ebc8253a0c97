package matrix

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/parallel"
)

// Transpose returns a new cols×rows matrix with m[i][j] at [j][i].
func (m *Matrix) Transpose() *Matrix {
	result := NewNamed(m.cols, m.rows, "("+m.name+")_Transpose")
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return result
}

// Add returns m + other. Shapes must match exactly.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, mismatch("addition", m, other)
	}
	result := NewNamed(m.rows, m.cols, m.name+" + "+other.name)
	for i, v := range m.data {
		result.data[i] = v + other.data[i]
	}
	return result, nil
}

// Sub returns m - other. Shapes must match exactly.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, mismatch("subtraction", m, other)
	}
	result := NewNamed(m.rows, m.cols, m.name+" - "+other.name)
	for i, v := range m.data {
		result.data[i] = v - other.data[i]
	}
	return result, nil
}

// Mul returns the matrix product m · other.
//
// (R, K) · (K, C) -> (R, C). Accumulates in float32.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, mismatch("multiplication", m, other)
	}
	r, k, c := m.rows, m.cols, other.cols
	result := NewNamed(r, c, m.name+" * "+other.name)

	// Naive O(n³) implementation; output rows are independent so large
	// products are split across goroutines without changing the result.
	parallel.Rows(r, k*c, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < c; j++ {
				sum := float32(0)
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += m.data[i*k+kIdx] * other.data[kIdx*c+j]
				}
				result.data[i*c+j] = sum
			}
		}
	}, parallel.DefaultConfig())
	return result, nil
}

// Scale returns k·m.
func (m *Matrix) Scale(k float32) *Matrix {
	result := NewNamed(m.rows, m.cols, fmt.Sprintf("%s * const(%g)", m.name, k))
	for i, v := range m.data {
		result.data[i] = v * k
	}
	return result
}

// Hadamard returns the elementwise product m ⊙ other.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, mismatch("element wise multiplication", m, other)
	}
	result := NewNamed(m.rows, m.cols, m.name+" % "+other.name)
	for i, v := range m.data {
		result.data[i] = v * other.data[i]
	}
	return result, nil
}

// AddRow adds the 1×C matrix row to every row of m.
//
// Used for bias addition over a batch; for a 1×C receiver it is Add.
func (m *Matrix) AddRow(row *Matrix) (*Matrix, error) {
	if row.rows != 1 || row.cols != m.cols {
		return nil, mismatch("row broadcast addition", m, row)
	}
	result := NewNamed(m.rows, m.cols, m.name+" + "+row.name)
	for i := 0; i < m.rows; i++ {
		off := i * m.cols
		for j := 0; j < m.cols; j++ {
			result.data[off+j] = m.data[off+j] + row.data[j]
		}
	}
	return result, nil
}

// SumRows returns the 1×C matrix of column sums.
func (m *Matrix) SumRows() *Matrix {
	result := NewNamed(1, m.cols, "("+m.name+")_RowSum")
	for i := 0; i < m.rows; i++ {
		off := i * m.cols
		for j := 0; j < m.cols; j++ {
			result.data[j] += m.data[off+j]
		}
	}
	return result
}

// Assign copies the values of other into m.
//
// Assignment never resizes: shapes must match. The receiver keeps its name.
func (m *Matrix) Assign(other *Matrix) error {
	if !m.sameShape(other) {
		return mismatch("assignment", m, other)
	}
	copy(m.data, other.data)
	return nil
}

// Equal reports whether m and other have the same shape and every pair of
// elements differs by at most tol.
func (m *Matrix) Equal(other *Matrix, tol float32) bool {
	if !m.sameShape(other) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(float64(v-other.data[i])) > float64(tol) {
			return false
		}
	}
	return true
}

func (m *Matrix) sameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}
