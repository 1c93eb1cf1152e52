// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/SwamWithTurtles/core.matrix/internal/ndarray"
)

// Type aliases for the public API

// Shape represents the per-axis extents of an array.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Kind is the runtime tag for an array's element kind.
type Kind = ndarray.Kind

// Element kind constants.
const (
	Int64   Kind = ndarray.Int64
	Float32 Kind = ndarray.Float32
	Float64 Kind = ndarray.Float64
	Boxed   Kind = ndarray.Boxed
)

// Array is a dense, strided n-dimensional array over a shared buffer.
//
// T is the element type: int64, float32, float64, or any (boxed).
// View-producing methods (Slice, Transpose, MainDiagonal, Subvector,
// Restride) alias the buffer; Clone severs aliasing.
//
// Example:
//
//	a, _ := ndarray.Zeros[float64](ndarray.Shape{3, 4})
//	v := a.Transpose()   // shape [4, 3], same buffer
type Array[T any] = ndarray.Array[T]

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidShape      = ndarray.ErrInvalidShape
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrOutOfRange        = ndarray.ErrOutOfRange
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrUnsupported       = ndarray.ErrUnsupported
)

// Creation functions

// Empty creates an array with uninitialized contents.
func Empty[T any](shape Shape) (*Array[T], error) {
	return ndarray.Empty[T](shape)
}

// Zeros creates an array filled with the element kind's zero value.
//
// Example:
//
//	x, _ := ndarray.Zeros[float64](ndarray.Shape{2, 3})
func Zeros[T any](shape Shape) (*Array[T], error) {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array filled with the element kind's one value.
func Ones[T any](shape Shape) (*Array[T], error) {
	return ndarray.Ones[T](shape)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	x, _ := ndarray.Full(ndarray.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) (*Array[T], error) {
	return ndarray.Full[T](shape, value)
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	identity, _ := ndarray.Eye[float64](3)
func Eye[T any](n int) (*Array[T], error) {
	return ndarray.Eye[T](n)
}

// FromSlice creates an array of the given shape backed by a copy of data.
//
// Example:
//
//	x, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice[T](data, shape)
}

// Arange creates a 1D array with values start, start+1, ..., end-1.
func Arange[T any](start, end int) (*Array[T], error) {
	return ndarray.Arange[T](start, end)
}

// Scalar creates a rank-0 array holding a single value.
func Scalar[T any](value T) *Array[T] {
	return ndarray.Scalar[T](value)
}

// FromSource creates an array by querying a foreign source through the
// shape-query capability.
func FromSource[T any](src Source) (*Array[T], error) {
	return ndarray.FromSource[T](src)
}

// Elementwise operations

// Add returns the elementwise sum of a and b, broadcasting if needed.
func Add[T any](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Add(a, b)
}

// Sub returns the elementwise difference of a and b, broadcasting if needed.
func Sub[T any](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Sub(a, b)
}

// ElemMul returns the elementwise product of a and b, broadcasting if needed.
func ElemMul[T any](a, b *Array[T]) (*Array[T], error) {
	return ndarray.ElemMul(a, b)
}

// ElemMulValue multiplies a by an arbitrary operand: plain numbers take a
// scalar fast path, foreign representations are coerced first.
func ElemMulValue[T any](a *Array[T], v any) (*Array[T], error) {
	return ndarray.ElemMulValue(a, v)
}

// Matrix products

// MatMul computes the matrix product of a and b, promoting rank-1 operands
// against rank-2 ones and scaling when b is rank 0.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	b, _ := ndarray.FromSlice([]float64{1, 0, 0, 1, 1, 1}, ndarray.Shape{3, 2})
//	c, _ := ndarray.MatMul(a, b) // shape [2, 2]
func MatMul[T any](a, b *Array[T]) (*Array[T], error) {
	return ndarray.MatMul(a, b)
}

// AddProduct returns m + a·b without modifying m.
func AddProduct[T any](m, a, b *Array[T]) (*Array[T], error) {
	return ndarray.AddProduct(m, a, b)
}

// AddProductInPlace adds a·b into m through its shared buffer.
func AddProductInPlace[T any](m, a, b *Array[T]) error {
	return ndarray.AddProductInPlace(m, a, b)
}

// AddScaledProduct returns m + factor*(a·b) without modifying m.
func AddScaledProduct[T any](m, a, b *Array[T], factor T) (*Array[T], error) {
	return ndarray.AddScaledProduct(m, a, b, factor)
}

// AddScaledProductInPlace adds factor*(a·b) into m through its shared buffer.
func AddScaledProductInPlace[T any](m, a, b *Array[T], factor T) error {
	return ndarray.AddScaledProductInPlace(m, a, b, factor)
}

// AddScaled returns m + factor*a elementwise; shapes must match exactly.
func AddScaled[T any](m, a *Array[T], factor T) (*Array[T], error) {
	return ndarray.AddScaled(m, a, factor)
}

// AddScaledInPlace adds factor*a into m through its shared buffer.
func AddScaledInPlace[T any](m, a *Array[T], factor T) error {
	return ndarray.AddScaledInPlace(m, a, factor)
}

// Equality

// Equal reports whether a and b have identical shapes and elements.
// Shape mismatch answers false, never an error.
func Equal[T any](a, b *Array[T]) bool {
	return ndarray.Equal(a, b)
}

// EqualValue compares a against an arbitrary operand, coercing foreign
// representations through the coercion capability.
func EqualValue[T any](a *Array[T], v any) bool {
	return ndarray.EqualValue(a, v)
}

// EqualApprox reports elementwise equality within epsilon.
func EqualApprox[T any](a, b *Array[T], epsilon float64) bool {
	return ndarray.EqualApprox(a, b, epsilon)
}

// Math-function registry

// ApplyFunc applies a registered named math function elementwise, returning
// a fresh array.
//
// Example:
//
//	y, _ := ndarray.ApplyFunc(x, "exp")
func ApplyFunc[T any](a *Array[T], name string) (*Array[T], error) {
	return ndarray.ApplyFunc(a, name)
}

// ApplyFuncInPlace applies a registered named math function through the
// shared buffer.
func ApplyFuncInPlace[T any](a *Array[T], name string) error {
	return ndarray.ApplyFuncInPlace(a, name)
}

// RegisterFunc adds or replaces a named unary math function.
func RegisterFunc(name string, fn func(float64) float64) {
	ndarray.RegisterFunc(name, fn)
}

// MathFuncNames returns the registered function names in sorted order.
func MathFuncNames() []string {
	return ndarray.MathFuncNames()
}
