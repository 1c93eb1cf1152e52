// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwamWithTurtles/core.matrix/ndarray"
)

func TestCreationAndAccess(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, ndarray.Float64, a.Kind())
	assert.Equal(t, 6.0, a.At(1, 2))

	a.Set(-1, 0, 1)
	assert.Equal(t, -1.0, a.At(0, 1))

	_, err = ndarray.Zeros[float64](ndarray.Shape{2, -1})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestViewsAliasTheBuffer(t *testing.T) {
	a, err := ndarray.Zeros[float64](ndarray.Shape{3, 3})
	require.NoError(t, err)

	diag, err := a.MainDiagonal()
	require.NoError(t, err)
	diag.Fill(1)

	id, err := ndarray.Eye[float64](3)
	require.NoError(t, err)
	assert.True(t, ndarray.Equal(a, id))

	clone := a.Clone()
	clone.Set(99, 0, 0)
	assert.Equal(t, 1.0, a.At(0, 0), "Clone must sever aliasing")
}

func TestArithmeticRoundTrip(t *testing.T) {
	a, err := ndarray.Arange[float64](1, 5)
	require.NoError(t, err)
	b, err := ndarray.Full(ndarray.Shape{4}, 2.0)
	require.NoError(t, err)

	sum, err := ndarray.Add(a, b)
	require.NoError(t, err)
	diff, err := ndarray.Sub(sum, b)
	require.NoError(t, err)
	assert.True(t, ndarray.Equal(a, diff))

	prod, err := ndarray.ElemMul(a, b)
	require.NoError(t, err)
	assert.True(t, ndarray.Equal(prod, a.Scale(2)))
}

func TestMatMulThroughFacade(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	require.NoError(t, err)
	b, err := ndarray.FromSlice([]float64{1, 0, 0, 1, 1, 1}, ndarray.Shape{3, 2})
	require.NoError(t, err)

	c, err := ndarray.MatMul(a, b)
	require.NoError(t, err)
	assert.True(t, ndarray.EqualValue(c, [][]float64{{4, 5}, {10, 11}}))

	m, err := ndarray.Ones[float64](ndarray.Shape{2, 2})
	require.NoError(t, err)
	fused, err := ndarray.AddScaledProduct(m, a, b, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, fused.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestCapabilitySwap(t *testing.T) {
	// A broadcaster that refuses everything turns broadcastable adds into
	// shape errors.
	ndarray.SetBroadcaster(strictBroadcaster{})
	defer ndarray.SetBroadcaster(nil)

	col, err := ndarray.Zeros[float64](ndarray.Shape{3, 1})
	require.NoError(t, err)
	m, err := ndarray.Zeros[float64](ndarray.Shape{3, 5})
	require.NoError(t, err)

	_, err = ndarray.Add(col, m)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	ndarray.SetBroadcaster(nil)
	_, err = ndarray.Add(col, m)
	assert.NoError(t, err, "nil restores the default broadcaster")
}

type strictBroadcaster struct{}

func (strictBroadcaster) BroadcastShapes(a, b ndarray.Shape) (ndarray.Shape, bool, error) {
	if a.Equal(b) {
		return a.Clone(), false, nil
	}
	return nil, false, ndarray.ErrShapeMismatch
}
