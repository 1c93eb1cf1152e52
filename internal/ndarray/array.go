package ndarray

import "fmt"

// Array is an n-dimensional strided view over a shared linear buffer.
// The header (shape, strides, offset) is immutable after construction; the
// buffer is shared by reference among all views derived from the same array,
// so in-place mutation writes through every alias.
//
// Supported element types are int64, float32, float64 and any (boxed).
//
// Example:
//
//	a, _ := ndarray.Zeros[float64](ndarray.Shape{3, 4})
//	v, _ := a.Slice(1)     // zero-copy view of row 1
//	v.Fill(7)              // writes through to a
type Array[T any] struct {
	buf     *buffer[T]
	shape   Shape
	strides []int
	offset  int
	ops     *elemOps[T]
}

// Empty creates an array of the given shape with uninitialized contents
// (Go zero-valued memory, but no element-kind zero guarantee for boxed).
func Empty[T any](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[T]{
		buf:     newBuffer[T](shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		offset:  0,
		ops:     opsFor[T](),
	}, nil
}

// Zeros creates an array whose contents equal the element kind's zero value.
func Zeros[T any](shape Shape) (*Array[T], error) {
	a, err := Empty[T](shape)
	if err != nil {
		return nil, err
	}
	// For numeric kinds the fresh buffer is already zero; the boxed kind's
	// zero is float64(0), not nil.
	if a.ops.kind == Boxed {
		for i := range a.buf.data {
			a.buf.data[i] = a.ops.zero
		}
	}
	return a, nil
}

// Ones creates an array filled with the element kind's one value.
func Ones[T any](shape Shape) (*Array[T], error) {
	a, err := Empty[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = a.ops.one
	}
	return a, nil
}

// Full creates an array filled with a specific value.
func Full[T any](shape Shape, value T) (*Array[T], error) {
	a, err := Empty[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = value
	}
	return a, nil
}

// Eye creates an n×n identity matrix.
func Eye[T any](n int) (*Array[T], error) {
	a, err := Zeros[T](Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		a.Set(a.ops.one, i, i)
	}
	return a, nil
}

// FromSlice creates an array of the given shape backed by a copy of data.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d: %w",
			shape, shape.NumElements(), len(data), ErrInvalidShape)
	}
	a, err := Empty[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.buf.data, data)
	return a, nil
}

// Arange creates a 1D array with values start, start+1, ..., end-1.
func Arange[T any](start, end int) (*Array[T], error) {
	if end < start {
		return nil, fmt.Errorf("arange %d..%d: %w", start, end, ErrInvalidShape)
	}
	a, err := Empty[T](Shape{end - start})
	if err != nil {
		return nil, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = a.ops.fromFloat(float64(start + i))
	}
	return a, nil
}

// Scalar creates a rank-0 array holding a single value.
func Scalar[T any](value T) *Array[T] {
	a, err := Empty[T](Shape{})
	if err != nil {
		panic(err) // empty shape always validates
	}
	a.buf.data[0] = value
	return a
}

// FromSource creates an array by querying a foreign source's shape and
// copying its elements one by one through the shape-query capability.
// Elements that cannot be represented in the target kind fail with
// ErrUnsupported.
func FromSource[T any](src Source) (*Array[T], error) {
	shape := src.Shape()
	a, err := Empty[T](shape.Clone())
	if err != nil {
		return nil, err
	}
	if shape.Rank() == 0 {
		elem := src.Get()
		v, ok := a.ops.cast(elem)
		if !ok {
			return nil, fmt.Errorf("cannot represent %T as %s: %w", elem, a.ops.kind, ErrUnsupported)
		}
		a.buf.data[0] = v
		return a, nil
	}

	idx := make([]int, shape.Rank())
	for i := 0; i < shape.NumElements(); i++ {
		elem := src.Get(idx...)
		v, ok := a.ops.cast(elem)
		if !ok {
			return nil, fmt.Errorf("cannot represent %T as %s: %w", elem, a.ops.kind, ErrUnsupported)
		}
		a.buf.data[i] = v // fresh arrays are packed row-major
		odometerNext(idx, shape)
	}
	return a, nil
}

// Shape returns the array's shape. The returned slice must not be modified.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the per-axis element steps. Must not be modified.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Offset returns the flat buffer position of the element at index (0,...,0).
func (a *Array[T]) Offset() int {
	return a.offset
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Kind returns the runtime element-kind tag.
func (a *Array[T]) Kind() Kind {
	return a.ops.kind
}

// NumElements returns the number of logical elements.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// Data returns the full backing store shared by every alias of this array.
// Flat positions computed from Offset() and Strides() index into it directly.
//
// WARNING: modifications write through to all views sharing the buffer.
func (a *Array[T]) Data() []T {
	return a.buf.data
}

// IsContiguous reports whether the array is fully packed: its strides equal
// the row-major strides of its shape, so elements occupy the buffer range
// [offset, offset+NumElements) consecutively.
func (a *Array[T]) IsContiguous() bool {
	want := a.shape.ComputeStrides()
	if len(want) != len(a.strides) {
		return false
	}
	for i := range want {
		if a.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// IsUnique reports whether this header is the only reference to the buffer.
func (a *Array[T]) IsUnique() bool {
	return a.buf.isUnique()
}

// Release drops this header's reference to the shared buffer. Optional; the
// garbage collector reclaims unreferenced buffers regardless.
func (a *Array[T]) Release() {
	a.buf.release()
}

// flatIndex maps a full multi-index to its flat buffer position.
// Panics on arity or bounds misuse: indexing mistakes are programmer errors.
func (a *Array[T]) flatIndex(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: expected %d indices, got %d", len(a.shape), len(indices)))
	}
	flat := a.offset
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of bounds for axis %d (extent %d)", idx, i, a.shape[i]))
		}
		flat += idx * a.strides[i]
	}
	return flat
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(indices ...int) T {
	return a.buf.data[a.flatIndex(indices)]
}

// Set stores value at the given multi-index, writing through the shared
// buffer (every alias observes the write).
func (a *Array[T]) Set(value T, indices ...int) {
	a.buf.data[a.flatIndex(indices)] = value
}

// Item returns the value of a rank-0 array.
// Panics if the array is not a scalar.
func (a *Array[T]) Item() T {
	if len(a.shape) != 0 {
		panic(fmt.Sprintf("ndarray: Item on non-scalar array of shape %v", a.shape))
	}
	return a.buf.data[a.offset]
}

// String returns a short human-readable description of the header.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", a.ops.kind, a.shape)
}

// Get implements the Source capability, so an Array can itself be consumed
// as a foreign source (e.g. by FromSource with a different element kind).
func (a *Array[T]) Get(indices ...int) any {
	if len(a.shape) == 0 {
		return a.buf.data[a.offset]
	}
	return a.At(indices...)
}

// Dims implements the Source capability.
func (a *Array[T]) Dims() int {
	return len(a.shape)
}
