package ndarray

// Equality kernel: structural comparison over strided layouts. Shape
// mismatch is an answer (false), never an error.

// Equal reports whether a and b have identical shapes and elements. The walk
// is rank-specialized and short-circuits on the first mismatch; comparing an
// array against itself short-circuits immediately.
func Equal[T any](a, b *Array[T]) bool {
	if a == b {
		return true
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	eq := a.ops.eq
	da, db := a.buf.data, b.buf.data
	return forEachUntil2(a.shape, a.strides, a.offset, b.strides, b.offset, func(fa, fb int) bool {
		return eq(da[fa], db[fb])
	})
}

// EqualValue compares a against an arbitrary operand: foreign representations
// are coerced into a's element kind via the coercion capability and compared
// recursively. Unrecognized or unrepresentable operands compare false.
func EqualValue[T any](a *Array[T], v any) bool {
	if b, ok := v.(*Array[T]); ok {
		return Equal(a, b)
	}
	src, ok := coerce(v)
	if !ok {
		return false
	}
	b, err := FromSource[T](src)
	if err != nil {
		return false
	}
	return Equal(a, b)
}

// EqualApprox reports whether a and b have identical shapes and elementwise
// numeric difference within epsilon. Non-numeric boxed elements fall back to
// exact comparison.
func EqualApprox[T any](a, b *Array[T], epsilon float64) bool {
	if a == b {
		return true
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	toFloat, eq := a.ops.toFloat, a.ops.eq
	da, db := a.buf.data, b.buf.data
	return forEachUntil2(a.shape, a.strides, a.offset, b.strides, b.offset, func(fa, fb int) bool {
		va, aok := toFloat(da[fa])
		vb, bok := toFloat(db[fb])
		if !aok || !bok {
			return eq(da[fa], db[fb])
		}
		diff := va - vb
		if diff < 0 {
			diff = -diff
		}
		return diff <= epsilon
	})
}
