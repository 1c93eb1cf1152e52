package gonum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/SwamWithTurtles/core.matrix/ndarray"
)

func TestWrapMatrix(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	w := Wrap(d)

	assert.Equal(t, ndarray.Shape{2, 3}, w.Shape())
	assert.Equal(t, 2, w.Dims())
	assert.Equal(t, any(6.0), w.Get(1, 2))
}

func TestWrapVector(t *testing.T) {
	v := mat.NewVecDense(3, []float64{7, 8, 9})
	w := WrapVector(v)

	assert.Equal(t, ndarray.Shape{3}, w.Shape())
	assert.Equal(t, 1, w.Dims())
	assert.Equal(t, any(9.0), w.Get(2))
}

func TestDenseRoundTrip(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	a, err := FromDense(d)
	require.NoError(t, err)
	require.True(t, a.Shape().Equal(ndarray.Shape{2, 2}))
	assert.Equal(t, 3.0, a.At(1, 0))

	back, err := ToDense(a)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, back))

	// The copy is deep: mutating the array leaves the dense alone.
	a.Set(99, 0, 0)
	assert.Equal(t, 1.0, d.At(0, 0))
}

func TestToDenseRequiresRank2(t *testing.T) {
	v, err := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3})
	require.NoError(t, err)

	_, err = ToDense(v)
	assert.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}

func TestToDenseOfView(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	require.NoError(t, err)

	d, err := ToDense(a.Transpose())
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.At(1, 0))
	assert.Equal(t, 3.0, d.At(0, 1))
}

func TestFromVecDense(t *testing.T) {
	v := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	a, err := FromVecDense(v)
	require.NoError(t, err)
	require.True(t, a.Shape().Equal(ndarray.Shape{4}))
	assert.Equal(t, 4.0, a.At(3))
}

func TestRegisterCoercion(t *testing.T) {
	Register()
	defer ndarray.SetCoercer(nil)

	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	require.NoError(t, err)
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	// Equality and arithmetic accept gonum operands directly.
	assert.True(t, ndarray.EqualValue(a, d))
	assert.False(t, ndarray.EqualValue(a, mat.NewDense(2, 2, []float64{0, 0, 0, 0})))

	prod, err := ndarray.ElemMulValue(a, d)
	require.NoError(t, err)
	assert.Equal(t, 16.0, prod.At(1, 1))

	v := mat.NewVecDense(2, []float64{10, 20})
	row, err := ndarray.FromSlice([]float64{10, 20}, ndarray.Shape{2})
	require.NoError(t, err)
	assert.True(t, ndarray.EqualValue(row, v))
}
