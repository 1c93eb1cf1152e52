// Package gonum adapts gonum matrices and vectors to the ndarray capability
// interfaces: wrapped values act as shape-query sources for FromSource, and
// Register installs a coercer so binary operations and equality accept gonum
// operands directly.
package gonum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/SwamWithTurtles/core.matrix/ndarray"
)

// Matrix wraps a gonum mat.Matrix as a rank-2 shape-query source.
type Matrix struct {
	m mat.Matrix
}

// Wrap adapts any gonum matrix.
func Wrap(m mat.Matrix) *Matrix {
	return &Matrix{m: m}
}

// Shape returns the ordered extents [rows, cols].
func (w *Matrix) Shape() ndarray.Shape {
	r, c := w.m.Dims()
	return ndarray.Shape{r, c}
}

// Dims returns the rank, always 2.
func (w *Matrix) Dims() int {
	return 2
}

// Get returns the element at [indices[0], indices[1]].
func (w *Matrix) Get(indices ...int) any {
	return w.m.At(indices[0], indices[1])
}

// Vector wraps a gonum mat.Vector as a rank-1 shape-query source.
type Vector struct {
	v mat.Vector
}

// WrapVector adapts a gonum vector.
func WrapVector(v mat.Vector) *Vector {
	return &Vector{v: v}
}

// Shape returns the ordered extents [n].
func (w *Vector) Shape() ndarray.Shape {
	return ndarray.Shape{w.v.Len()}
}

// Dims returns the rank, always 1.
func (w *Vector) Dims() int {
	return 1
}

// Get returns the element at [indices[0]].
func (w *Vector) Get(indices ...int) any {
	return w.v.AtVec(indices[0])
}

// FromDense copies a gonum dense matrix into a fresh float64 ndarray.
func FromDense(d *mat.Dense) (*ndarray.Array[float64], error) {
	return ndarray.FromSource[float64](Wrap(d))
}

// ToDense copies a rank-2 float64 ndarray into a fresh gonum dense matrix.
func ToDense(a *ndarray.Array[float64]) (*mat.Dense, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("rank-2 array required, got shape %v: %w", shape, ndarray.ErrDimensionMismatch)
	}
	out := mat.NewDense(shape[0], shape[1], nil)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}
	return out, nil
}

// FromVecDense copies a gonum dense vector into a fresh rank-1 float64
// ndarray.
func FromVecDense(v *mat.VecDense) (*ndarray.Array[float64], error) {
	return ndarray.FromSource[float64](WrapVector(v))
}

// coercer recognizes gonum matrices and vectors.
type coercer struct{}

// Coerce implements ndarray.Coercer.
func (coercer) Coerce(v any) (ndarray.Source, bool) {
	switch x := v.(type) {
	case mat.Vector:
		return WrapVector(x), true
	case mat.Matrix:
		return Wrap(x), true
	}
	return nil, false
}

// Register installs the gonum coercer as the core's coercion capability.
func Register() {
	ndarray.SetCoercer(coercer{})
}
