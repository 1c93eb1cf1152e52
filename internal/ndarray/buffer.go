package ndarray

import "sync/atomic"

// buffer is the linear element store shared by reference among every header
// that aliases it. Views increment the count; the buffer lives as long as the
// longest-surviving header. The count exists so callers can observe aliasing
// (IsUnique) and release eagerly; the garbage collector remains the backstop.
type buffer[T any] struct {
	data []T
	refs atomic.Int32
}

// newBuffer allocates a zero-initialized buffer with a single reference.
func newBuffer[T any](size int) *buffer[T] {
	b := &buffer[T]{
		data: make([]T, size),
	}
	b.refs.Store(1)
	return b
}

// addRef records a new header aliasing this buffer.
func (b *buffer[T]) addRef() {
	b.refs.Add(1)
}

// release drops a reference and frees the store once nothing aliases it.
func (b *buffer[T]) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

// isUnique reports whether exactly one header references this buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refs.Load() == 1
}
