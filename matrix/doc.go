// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a dense float32 matrix with value semantics.
//
// # Overview
//
// Matrix is the numeric building block of the mlp module. This package provides:
//   - Construction: New, NewNamed, FromSlice, FromRows, Zeros, Ones, Identity
//   - Fillers: SetZeros, SetOnes, SetIdentity, SetUniform
//   - Arithmetic: Add, Sub, Mul, Scale, Hadamard, Transpose, Assign
//   - Activations: Sigmoid, SigmoidDerivative, Softmax
//   - Interop with gonum: ToDense, FromDense
//
// Every operator returns a new matrix; no two matrices share storage.
//
// # Basic Usage
//
//	a := matrix.NewNamed(3, 4, "A").SetOnes()
//	b := matrix.NewNamed(4, 3, "B").SetOnes()
//
//	c, err := a.Mul(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(c)
//
// # Errors
//
// Shape violations return a *ShapeError wrapping ErrDimensionMismatch or
// ErrInvalidShape:
//
//	_, err := a.Mul(a)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//	    // (3,4) · (3,4) is undefined
//	}
package matrix
