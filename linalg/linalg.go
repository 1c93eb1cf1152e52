// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides LU-decomposition-based linear algebra over float64
// ndarrays: decompose, solve, invert, determinant and trace.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]float64{4, 3, 6, 3}, ndarray.Shape{2, 2})
//	inv, _ := linalg.Invert(a)
//	det, _ := linalg.Det(a)
package linalg

import (
	"github.com/SwamWithTurtles/core.matrix/internal/linalg"
	"github.com/SwamWithTurtles/core.matrix/ndarray"
)

// ErrSingularMatrix is returned when partial pivoting hits an exactly-zero
// pivot.
var ErrSingularMatrix = linalg.ErrSingularMatrix

// LUDecompose factorizes m in place with partial pivoting: PA = LU. The
// upper triangle holds U, the strictly lower triangle holds L's multipliers
// (unit diagonal). Returns the swap-parity sign and the row permutation.
//
// Destructive: callers needing the original must Clone first.
func LUDecompose(m *ndarray.Array[float64]) (sign int, perm []int, err error) {
	return linalg.LUDecompose(m)
}

// LUSolve solves Ax = b in place given the packed LU form and its row
// permutation; x initially holds b and is overwritten with the solution.
func LUSolve(lu *ndarray.Array[float64], perm []int, x *ndarray.Array[float64]) error {
	return linalg.LUSolve(lu, perm, x)
}

// Invert returns the inverse of a square matrix, leaving m unmodified.
func Invert(m *ndarray.Array[float64]) (*ndarray.Array[float64], error) {
	return linalg.Invert(m)
}

// Det returns the determinant of a square matrix, leaving m unmodified.
// Singular matrices yield 0.
func Det(m *ndarray.Array[float64]) (float64, error) {
	return linalg.Det(m)
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m *ndarray.Array[float64]) (float64, error) {
	return linalg.Trace(m)
}
