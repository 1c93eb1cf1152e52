// Package linalg implements LU-decomposition-based linear algebra over
// float64 ndarrays: decompose, solve, invert, determinant and trace.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"github.com/SwamWithTurtles/core.matrix/internal/ndarray"
)

// ErrSingularMatrix is returned when partial pivoting finds an exactly-zero
// pivot: the matrix has no LU factorization with nonzero pivots and is not
// invertible.
var ErrSingularMatrix = errors.New("linalg: singular matrix")

// requireSquare validates that m is a square rank-2 array and returns n.
func requireSquare(m *ndarray.Array[float64]) (int, error) {
	shape := m.Shape()
	if len(shape) != 2 || shape[0] != shape[1] {
		return 0, fmt.Errorf("square matrix required, got shape %v: %w", shape, ndarray.ErrDimensionMismatch)
	}
	return shape[0], nil
}

// LUDecompose factorizes m in place with partial pivoting: PA = LU.
// Afterwards m's upper triangle (diagonal included) holds U and the strictly
// lower triangle holds L's elimination multipliers (L has a unit diagonal).
//
// The returned permutation maps factored row i to original row perm[i]; sign
// is the swap parity (+1 or -1), used by Det.
//
// Destructive: callers needing the original must Clone first. On a singular
// pivot the buffer is left partially factored.
func LUDecompose(m *ndarray.Array[float64]) (sign int, perm []int, err error) {
	n, err := requireSquare(m)
	if err != nil {
		return 0, nil, err
	}

	data := m.Data()
	rs, cs := m.Strides()[0], m.Strides()[1]
	off := m.Offset()
	at := func(i, j int) int { return off + i*rs + j*cs }

	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	for j := 0; j < n; j++ {
		// Select the row at or below j with the largest |m[i][j]|.
		p := j
		max := math.Abs(data[at(j, j)])
		for i := j + 1; i < n; i++ {
			if v := math.Abs(data[at(i, j)]); v > max {
				max, p = v, i
			}
		}
		if max == 0 {
			return 0, nil, fmt.Errorf("zero pivot in column %d: %w", j, ErrSingularMatrix)
		}
		if p != j {
			for k := 0; k < n; k++ {
				data[at(p, k)], data[at(j, k)] = data[at(j, k)], data[at(p, k)]
			}
			perm[p], perm[j] = perm[j], perm[p]
			sign = -sign
		}

		// Eliminate below the pivot, packing the multipliers into the
		// freed sub-diagonal positions.
		pivot := data[at(j, j)]
		for i := j + 1; i < n; i++ {
			mult := data[at(i, j)] / pivot
			data[at(i, j)] = mult
			for k := j + 1; k < n; k++ {
				data[at(i, k)] -= mult * data[at(j, k)]
			}
		}
	}
	return sign, perm, nil
}

// LUSolve solves Ax = b in place given the packed LU form of A and its row
// permutation. x initially holds b and is overwritten with the solution:
// the permutation is applied to the right-hand side first, then Ly = Pb by
// forward substitution and Ux = y by backward substitution.
func LUSolve(lu *ndarray.Array[float64], perm []int, x *ndarray.Array[float64]) error {
	n, err := requireSquare(lu)
	if err != nil {
		return err
	}
	if len(perm) != n {
		return fmt.Errorf("permutation length %d for order %d: %w", len(perm), n, ndarray.ErrDimensionMismatch)
	}
	xShape := x.Shape()
	if len(xShape) != 1 || xShape[0] != n {
		return fmt.Errorf("rhs shape %v for order %d: %w", xShape, n, ndarray.ErrDimensionMismatch)
	}

	data := lu.Data()
	rs, cs := lu.Strides()[0], lu.Strides()[1]
	off := lu.Offset()
	at := func(i, j int) int { return off + i*rs + j*cs }

	xd := x.Data()
	xs := x.Strides()[0]
	xo := x.Offset()
	xat := func(i int) int { return xo + i*xs }

	// Permute the right-hand side: (Pb)[i] = b[perm[i]].
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		b[i] = xd[xat(perm[i])]
	}

	// Forward substitution, L unit-diagonal: y[i] = b[i] - Σ_{k<i} L[i][k]·y[k].
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= data[at(i, k)] * b[k]
		}
		b[i] = sum
	}

	// Backward substitution: x[i] = (y[i] - Σ_{k>i} U[i][k]·x[k]) / U[i][i].
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for k := i + 1; k < n; k++ {
			sum -= data[at(i, k)] * b[k]
		}
		b[i] = sum / data[at(i, i)]
	}

	for i := 0; i < n; i++ {
		xd[xat(i)] = b[i]
	}
	return nil
}
