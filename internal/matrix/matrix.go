// Package matrix implements a dense float32 matrix with value semantics.
//
// Every operator returns a freshly allocated matrix; no two matrices ever
// share storage. Dimensions are fixed at construction and never change,
// including on Assign.
//
// Example:
//
//	a := matrix.NewNamed(3, 4, "A").SetOnes()
//	b := matrix.NewNamed(4, 3, "B").SetOnes()
//	c, err := a.Mul(b) // 3×3, every entry 4
package matrix

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultName is the label given to matrices created without one.
const DefaultName = "<unnamed-matrix>"

// Matrix is a dense rows×cols grid of float32 values stored row-major.
//
// The name is a diagnostic label carried into error messages and the text
// dump; it has no effect on arithmetic.
type Matrix struct {
	name string
	rows int
	cols int
	data []float32 // len(data) == rows*cols
}

// New creates a zero-filled rows×cols matrix.
//
// Panics if rows or cols is not positive.
func New(rows, cols int) *Matrix {
	return NewNamed(rows, cols, DefaultName)
}

// NewNamed creates a zero-filled rows×cols matrix with the given label.
//
// Panics if rows or cols is not positive.
func NewNamed(rows, cols int, name string) *Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("matrix.New: dimensions must be positive, got (%d,%d)", rows, cols))
	}
	return &Matrix{
		name: name,
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

// FromSlice creates a rows×cols matrix from row-major data.
//
// The data is copied.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	if rows < 1 || cols < 1 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: FromSlice: (%d,%d) with %d values", ErrInvalidShape, rows, cols, len(data))
	}
	m := New(rows, cols)
	copy(m.data, data)
	return m, nil
}

// FromRows creates a matrix from a slice of equally long rows.
func FromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: FromRows: empty input", ErrInvalidShape)
	}
	m := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("%w: FromRows: row %d has %d values, want %d", ErrInvalidShape, i, len(row), m.cols)
		}
		copy(m.data[i*m.cols:], row)
	}
	return m, nil
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return New(rows, cols)
}

// Ones creates a rows×cols matrix of ones.
func Ones(rows, cols int) *Matrix {
	return New(rows, cols).SetOnes()
}

// Identity creates the n×n identity matrix.
func Identity(n int) *Matrix {
	return NewNamed(n, n, fmt.Sprintf("I_%d", n)).SetIdentity()
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := NewNamed(m.rows, m.cols, "("+m.name+")_copy")
	copy(c.data, m.data)
	return c
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Len returns the number of elements.
func (m *Matrix) Len() int { return m.rows * m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// Name returns the diagnostic label.
func (m *Matrix) Name() string { return m.name }

// SetName replaces the diagnostic label.
func (m *Matrix) SetName(name string) *Matrix {
	m.name = name
	return m
}

// At returns the element at row i, column j.
//
// Indices are not validated; out-of-range access is the caller's bug.
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
//
// Indices are not validated; out-of-range access is the caller's bug.
func (m *Matrix) Set(i, j int, v float32) {
	m.data[i*m.cols+j] = v
}

// Data returns a copy of the row-major values.
func (m *Matrix) Data() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)
	return out
}

// SetZeros fills m with zeros.
func (m *Matrix) SetZeros() *Matrix {
	for i := range m.data {
		m.data[i] = 0
	}
	return m
}

// SetOnes fills m with ones.
func (m *Matrix) SetOnes() *Matrix {
	for i := range m.data {
		m.data[i] = 1
	}
	return m
}

// SetIdentity writes 1 where i == j and 0 elsewhere. Non-square matrices
// get ones along the leading diagonal.
func (m *Matrix) SetIdentity() *Matrix {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if i == j {
				m.data[i*m.cols+j] = 1
			} else {
				m.data[i*m.cols+j] = 0
			}
		}
	}
	return m
}

// SetUniform fills m with independent draws from [low, high) using rng.
func (m *Matrix) SetUniform(rng *rand.Rand, low, high float32) *Matrix {
	for i := range m.data {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		m.data[i] = low + rng.Float32()*(high-low)
	}
	return m
}

// String renders the label, shape and values, one row per line.
//
//	A of shape: (2,2) is
//	1 0
//	0 1
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s of shape: (%d,%d) is\n", m.name, m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
