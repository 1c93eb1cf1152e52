// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense, strided, multi-dimensional numeric arrays.
//
// # Overview
//
// An Array is a (buffer, shape, strides, offset) header over a linear store
// shared by reference among views. The package provides:
//   - Generic arrays over int64, float32, float64 and boxed (any) elements
//   - Zero-copy views: slicing, transpose, restride, diagonal, subvector
//   - Elementwise arithmetic with NumPy-style broadcasting
//   - Dense matrix multiply and fused add-product kernels
//   - Structural equality over arbitrary strided layouts
//
// # Basic Usage
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	b := a.Transpose()                 // zero-copy view, shape [3, 2]
//	c, _ := ndarray.MatMul(a, b)       // shape [2, 2]
//	row, _ := a.Slice(0)               // zero-copy view of row 0
//	row.Fill(0)                        // writes through to a
//
// # Views and Aliasing
//
// View-producing operations share the source buffer: mutating a view mutates
// every alias. Clone copies into a fresh packed row-major buffer and is the
// only way to sever aliasing.
//
// # Concurrency
//
// Operations are synchronous and CPU-bound. Concurrent reads of logically
// immutable arrays are safe; concurrent mutation of a buffer, including
// through views, must be serialized by the caller.
//
// Linear algebra (LU decomposition, solve, invert, determinant) lives in the
// linalg package and requires float64 arrays.
package ndarray
