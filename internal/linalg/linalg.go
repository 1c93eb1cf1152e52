package linalg

import (
	"errors"

	"github.com/SwamWithTurtles/core.matrix/internal/ndarray"
)

// Invert returns the inverse of a square matrix. m is not modified: the
// decomposition runs on a clone, and each column of the result is obtained
// by solving against the corresponding unit basis vector.
// Fails with ErrSingularMatrix when m is not invertible.
func Invert(m *ndarray.Array[float64]) (*ndarray.Array[float64], error) {
	n, err := requireSquare(m)
	if err != nil {
		return nil, err
	}

	lu := m.Clone()
	_, perm, err := LUDecompose(lu)
	if err != nil {
		return nil, err
	}

	inv, err := ndarray.Zeros[float64](ndarray.Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		// Solve in place directly into column i of the result.
		col := inv.Restride(ndarray.Shape{n}, []int{inv.Strides()[0]}, inv.Offset()+i*inv.Strides()[1])
		col.Set(1, i)
		if err := LUSolve(lu, perm, col); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// Det returns the determinant of a square matrix: the swap-parity sign times
// the product of the packed LU diagonal. A singular pivot short-circuits to
// zero. m is not modified.
func Det(m *ndarray.Array[float64]) (float64, error) {
	if _, err := requireSquare(m); err != nil {
		return 0, err
	}

	lu := m.Clone()
	sign, _, err := LUDecompose(lu)
	if err != nil {
		if errors.Is(err, ErrSingularMatrix) {
			return 0, nil
		}
		return 0, err
	}

	diag, err := lu.MainDiagonal()
	if err != nil {
		return 0, err
	}
	det := float64(sign)
	dd := diag.Data()
	ds, do := diag.Strides()[0], diag.Offset()
	for i := 0; i < diag.Shape()[0]; i++ {
		det *= dd[do+i*ds]
	}
	return det, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m *ndarray.Array[float64]) (float64, error) {
	if _, err := requireSquare(m); err != nil {
		return 0, err
	}
	diag, err := m.MainDiagonal()
	if err != nil {
		return 0, err
	}
	return diag.Sum(), nil
}
