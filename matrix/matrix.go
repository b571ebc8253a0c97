// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/mlp/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Matrix is a dense rows×cols grid of float32 values.
//
// Example:
//
//	m := matrix.New(2, 3).SetOnes()
//	t := m.Transpose() // 3×2
type Matrix = matrix.Matrix

// ShapeError reports the operands of a failed operation.
type ShapeError = matrix.ShapeError

// Operand describes one side of a failed operation.
type Operand = matrix.Operand

// DefaultName is the label given to matrices created without one.
const DefaultName = matrix.DefaultName

// Errors
var (
	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidShape indicates a structural shape precondition failed.
	ErrInvalidShape = matrix.ErrInvalidShape
)

// Creation functions

// New creates a zero-filled rows×cols matrix. Panics on non-positive dimensions.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// NewNamed creates a zero-filled rows×cols matrix with a diagnostic label.
func NewNamed(rows, cols int, name string) *Matrix {
	return matrix.NewNamed(rows, cols, name)
}

// FromSlice creates a rows×cols matrix from row-major data.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// FromRows creates a matrix from equally long rows.
//
// Example:
//
//	m, err := matrix.FromRows([][]float32{{1, 2}, {3, 4}})
func FromRows(rows [][]float32) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// Ones creates a rows×cols matrix of ones.
func Ones(rows, cols int) *Matrix {
	return matrix.Ones(rows, cols)
}

// Identity creates the n×n identity matrix.
func Identity(n int) *Matrix {
	return matrix.Identity(n)
}

// FromDense converts a gonum matrix to a Matrix.
func FromDense(d mat.Matrix, name string) *Matrix {
	return matrix.FromDense(d, name)
}
