package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by matrix operations.
//
// Operations wrap them in a *ShapeError carrying the operands, so callers
// match with errors.Is and inspect details with errors.As.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes or Mul where lhs.Cols() != rhs.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidShape indicates a structural precondition beyond simple
	// equality, e.g. Softmax on a matrix with more than one column.
	ErrInvalidShape = errors.New("matrix: invalid shape")
)

// Operand describes one side of a failed operation.
type Operand struct {
	Name string
	Rows int
	Cols int
}

func (o Operand) String() string {
	return fmt.Sprintf("%s(%d,%d)", o.Name, o.Rows, o.Cols)
}

// ShapeError reports a shape precondition violation for an operation.
//
// Right is the zero Operand for unary operations.
type ShapeError struct {
	Op    string
	Left  Operand
	Right Operand
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Right == (Operand{}) {
		return fmt.Sprintf("%s: %s: candidate is matrix %s", e.Err, e.Op, e.Left)
	}
	return fmt.Sprintf("%s: %s: candidates are matrices %s and %s", e.Err, e.Op, e.Left, e.Right)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func operand(m *Matrix) Operand {
	return Operand{Name: m.name, Rows: m.rows, Cols: m.cols}
}

func mismatch(op string, a, b *Matrix) error {
	return &ShapeError{Op: op, Left: operand(a), Right: operand(b), Err: ErrDimensionMismatch}
}

func invalid(op string, m *Matrix) error {
	return &ShapeError{Op: op, Left: operand(m), Err: ErrInvalidShape}
}
