package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualClone(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.True(t, Equal(a, a), "identity short-circuit")
	assert.True(t, Equal(a, a.Clone()))

	// Equality sees through differing layouts: a transposed transpose has
	// the same logical elements with the same strides walked differently.
	assert.True(t, Equal(a, a.Transpose().Transpose()))
}

func TestEqualShapeMismatchIsFalse(t *testing.T) {
	a, _ := Zeros[float64](Shape{2, 3})
	b, _ := Zeros[float64](Shape{3, 2})
	c, _ := Zeros[float64](Shape{2, 3, 1})

	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqualFirstMismatch(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	b := a.Clone()
	b.Set(-1, 1, 0)

	assert.False(t, Equal(a, b))
}

func TestEqualStridedViews(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	// A transposed view equals an array constructed in transposed order.
	b, err := FromSlice([]float64{1, 4, 2, 5, 3, 6}, Shape{3, 2})
	require.NoError(t, err)
	assert.True(t, Equal(a.Transpose(), b))
}

func TestEqualScalar(t *testing.T) {
	assert.True(t, Equal(Scalar(2.0), Scalar(2.0)))
	assert.False(t, Equal(Scalar(2.0), Scalar(3.0)))
}

func TestEqualValueCoercion(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	assert.True(t, EqualValue(a, [][]float64{{1, 2}, {3, 4}}))
	assert.False(t, EqualValue(a, [][]float64{{1, 2}, {3, 5}}))
	assert.False(t, EqualValue(a, [][]float64{{1, 2, 3}, {4, 5, 6}}), "shape mismatch is false, not an error")

	v, err := FromSlice([]float64{1, 2}, Shape{2})
	require.NoError(t, err)
	assert.True(t, EqualValue(v, []float64{1, 2}))

	assert.False(t, EqualValue(a, struct{}{}), "unrecognized operands compare false")
}

func TestEqualValueRaggedRows(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	// Ragged nested slices describe no shape; the comparison must answer
	// false, never raise.
	assert.False(t, EqualValue(a, [][]float64{{1, 2}, {3}}))
	assert.False(t, EqualValue(a, [][]float64{{1}, {3, 4, 5}}))
}

func TestEqualBoxed(t *testing.T) {
	a, err := FromSlice([]any{int64(1), 2.0}, Shape{2})
	require.NoError(t, err)
	b, err := FromSlice([]any{1.0, 2.0}, Shape{2})
	require.NoError(t, err)

	// Boxed comparison is numeric across representations.
	assert.True(t, Equal(a, b))

	c, err := FromSlice([]any{"x", "y"}, Shape{2})
	require.NoError(t, err)
	d, err := FromSlice([]any{"x", "y"}, Shape{2})
	require.NoError(t, err)
	assert.True(t, Equal(c, d))
	assert.False(t, Equal(a, c))
}

func TestEqualApprox(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)
	b, err := FromSlice([]float64{1 + 1e-12, 2, 3 - 1e-12}, Shape{3})
	require.NoError(t, err)

	assert.True(t, EqualApprox(a, b, 1e-9))
	assert.False(t, EqualApprox(a, b, 1e-15))

	c, _ := Zeros[float64](Shape{4})
	assert.False(t, EqualApprox(a, c, 1))
}
