package ndarray

import "fmt"

// View/slice engine: every function here derives a new header over the
// existing buffer without copying data. Mutating a view mutates every alias;
// Clone is the only operation that severs aliasing.

// view builds a sibling header over the same buffer.
func (a *Array[T]) view(shape Shape, strides []int, offset int) *Array[T] {
	a.buf.addRef()
	return &Array[T]{
		buf:     a.buf,
		shape:   shape,
		strides: strides,
		offset:  offset,
		ops:     a.ops,
	}
}

// SliceAlong removes axis dim by fixing it at idx, yielding a view of rank
// one less. Fails with ErrOutOfRange when the array is rank 0 or idx is
// outside the axis extent.
func (a *Array[T]) SliceAlong(dim, idx int) (*Array[T], error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("slice of rank-0 array: %w", ErrOutOfRange)
	}
	if dim < 0 || dim >= len(a.shape) {
		return nil, fmt.Errorf("axis %d of rank-%d array: %w", dim, len(a.shape), ErrOutOfRange)
	}
	if idx < 0 || idx >= a.shape[dim] {
		return nil, fmt.Errorf("index %d on axis %d (extent %d): %w", idx, dim, a.shape[dim], ErrOutOfRange)
	}

	shape := make(Shape, 0, len(a.shape)-1)
	strides := make([]int, 0, len(a.strides)-1)
	for d := range a.shape {
		if d == dim {
			continue
		}
		shape = append(shape, a.shape[d])
		strides = append(strides, a.strides[d])
	}
	if len(shape) == 0 {
		strides = []int{1} // rank-0 stride sentinel
	}
	return a.view(shape, strides, a.offset+idx*a.strides[dim]), nil
}

// Slice fixes the leading axis at idx: the row-major slice.
func (a *Array[T]) Slice(idx int) (*Array[T], error) {
	return a.SliceAlong(0, idx)
}

// Restride reconstructs a raw header over the same buffer. Validity of the
// (shape, strides, offset) triple is entirely the caller's responsibility;
// this is the primitive behind transpose, subvector, diagonal extraction and
// rank promotion in matrix multiply.
func (a *Array[T]) Restride(shape Shape, strides []int, offset int) *Array[T] {
	return a.view(shape.Clone(), append([]int(nil), strides...), offset)
}

// Transpose reverses the order of axes without moving data.
func (a *Array[T]) Transpose() *Array[T] {
	rank := len(a.shape)
	shape := make(Shape, rank)
	strides := make([]int, len(a.strides))
	for i := range a.shape {
		shape[i] = a.shape[rank-1-i]
	}
	for i := range a.strides {
		strides[i] = a.strides[len(a.strides)-1-i]
	}
	return a.view(shape, strides, a.offset)
}

// MainDiagonal views the main diagonal of a square rank-2 array as a rank-1
// array whose stride steps one row and one column at a time.
func (a *Array[T]) MainDiagonal() (*Array[T], error) {
	if len(a.shape) != 2 || a.shape[0] != a.shape[1] {
		return nil, fmt.Errorf("main diagonal of shape %v: %w", a.shape, ErrDimensionMismatch)
	}
	return a.view(Shape{a.shape[0]}, []int{a.strides[0] + a.strides[1]}, a.offset), nil
}

// Subvector views length elements of a rank-1 array starting at start.
func (a *Array[T]) Subvector(start, length int) (*Array[T], error) {
	if len(a.shape) != 1 {
		return nil, fmt.Errorf("subvector of rank-%d array: %w", len(a.shape), ErrDimensionMismatch)
	}
	if start < 0 || length < 0 || start+length > a.shape[0] {
		return nil, fmt.Errorf("subvector [%d:%d] of extent %d: %w", start, start+length, a.shape[0], ErrOutOfRange)
	}
	return a.view(Shape{length}, []int{a.strides[0]}, a.offset+start*a.strides[0]), nil
}

// Clone copies every logical element into a fresh packed row-major buffer,
// severing aliasing with the source.
func (a *Array[T]) Clone() *Array[T] {
	out, err := Empty[T](a.shape)
	if err != nil {
		panic(err) // existing headers always carry valid shapes
	}
	dst := out.buf.data
	src := a.buf.data
	i := 0
	forEach(a.shape, a.strides, a.offset, func(flat int) {
		dst[i] = src[flat]
		i++
	})
	return out
}

// broadcastTo builds a zero-stride view of a aligned to a broadcast-resolved
// common shape: missing leading axes and extent-1 axes get stride 0, so the
// single source element is revisited instead of materialized.
// The common shape must come from a Broadcaster; it is not re-validated.
func (a *Array[T]) broadcastTo(common Shape) *Array[T] {
	if a.shape.Equal(common) {
		return a.view(a.shape.Clone(), append([]int(nil), a.strides...), a.offset)
	}
	strides := make([]int, len(common))
	grow := len(common) - len(a.shape)
	for d := range common {
		if d < grow {
			strides[d] = 0
			continue
		}
		if a.shape[d-grow] == 1 && common[d] != 1 {
			strides[d] = 0
		} else {
			strides[d] = a.strides[d-grow]
		}
	}
	return a.view(common.Clone(), strides, a.offset)
}
