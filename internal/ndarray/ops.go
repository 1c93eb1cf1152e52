package ndarray

import (
	"fmt"
	"math"
)

// Elementwise operations, built on the traversal engine. Unary operations
// come in a cloning flavor (result in a fresh packed buffer, source
// untouched) and an in-place flavor (writes through the shared buffer).

// Map applies fn to every element, returning the result in a fresh packed
// array and leaving a unmodified.
func (a *Array[T]) Map(fn func(T) T) *Array[T] {
	out, err := Empty[T](a.shape)
	if err != nil {
		panic(err)
	}
	dst := out.buf.data
	src := a.buf.data
	i := 0
	forEach(a.shape, a.strides, a.offset, func(flat int) {
		dst[i] = fn(src[flat])
		i++
	})
	return out
}

// MapInPlace applies fn to every element, writing through the shared buffer.
func (a *Array[T]) MapInPlace(fn func(T) T) {
	data := a.buf.data
	forEach(a.shape, a.strides, a.offset, func(flat int) {
		data[flat] = fn(data[flat])
	})
}

// Neg returns the elementwise negation.
func (a *Array[T]) Neg() *Array[T] {
	return a.Map(a.ops.neg)
}

// NegInPlace negates every element in place.
func (a *Array[T]) NegInPlace() {
	a.MapInPlace(a.ops.neg)
}

// Scale returns the array multiplied elementwise by factor.
func (a *Array[T]) Scale(factor T) *Array[T] {
	mul := a.ops.mul
	return a.Map(func(v T) T { return mul(v, factor) })
}

// ScaleInPlace multiplies every element by factor in place.
func (a *Array[T]) ScaleInPlace(factor T) {
	mul := a.ops.mul
	a.MapInPlace(func(v T) T { return mul(v, factor) })
}

// AddScalar returns the array with value added to every element.
func (a *Array[T]) AddScalar(value T) *Array[T] {
	add := a.ops.add
	return a.Map(func(v T) T { return add(v, value) })
}

// AddScalarInPlace adds value to every element in place.
func (a *Array[T]) AddScalarInPlace(value T) {
	add := a.ops.add
	a.MapInPlace(func(v T) T { return add(v, value) })
}

// Pow returns the array with every element raised to exponent, computed in
// float64 and cast back to the element kind. Fails with ErrUnsupported on
// non-numeric boxed elements.
func (a *Array[T]) Pow(exponent float64) (*Array[T], error) {
	return applyFloat(a, func(v float64) float64 { return math.Pow(v, exponent) })
}

// Sum folds every element with the additive identity of the element kind.
func (a *Array[T]) Sum() T {
	add := a.ops.add
	acc := a.ops.zero
	data := a.buf.data
	forEach(a.shape, a.strides, a.offset, func(flat int) {
		acc = add(acc, data[flat])
	})
	return acc
}

// Fill assigns value to every element. Fully packed arrays take a flat copy
// loop over [offset, offset+n); strided views fall back to the shape-driven
// walk. The fast path is gated on IsContiguous so transposed or sliced views
// never smear writes over positions outside the view.
func (a *Array[T]) Fill(value T) {
	data := a.buf.data
	if a.IsContiguous() {
		n := a.shape.NumElements()
		for i := a.offset; i < a.offset+n; i++ {
			data[i] = value
		}
		return
	}
	forEach(a.shape, a.strides, a.offset, func(flat int) {
		data[flat] = value
	})
}

// binaryOp fuses fn over two arrays of identical shape into a fresh packed
// result. On mismatched shapes it invokes the broadcast-resolution
// capability once and retries over zero-stride aligned views.
func binaryOp[T any](a, b *Array[T], fn func(T, T) T) (*Array[T], error) {
	if !a.shape.Equal(b.shape) {
		common, _, err := activeBroadcaster.BroadcastShapes(a.shape, b.shape)
		if err != nil {
			return nil, err
		}
		a, b = a.broadcastTo(common), b.broadcastTo(common)
	}

	out, err := Empty[T](a.shape)
	if err != nil {
		return nil, err
	}
	dst := out.buf.data
	da, db := a.buf.data, b.buf.data
	i := 0
	forEach2(a.shape, a.strides, a.offset, b.strides, b.offset, func(fa, fb int) {
		dst[i] = fn(da[fa], db[fb])
		i++
	})
	return out, nil
}

// Add returns the elementwise sum of a and b, broadcasting if needed.
func Add[T any](a, b *Array[T]) (*Array[T], error) {
	out, err := binaryOp(a, b, a.ops.add)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return out, nil
}

// Sub returns the elementwise difference of a and b, broadcasting if needed.
func Sub[T any](a, b *Array[T]) (*Array[T], error) {
	out, err := binaryOp(a, b, a.ops.sub)
	if err != nil {
		return nil, fmt.Errorf("sub: %w", err)
	}
	return out, nil
}

// ElemMul returns the elementwise product of a and b, broadcasting if needed.
func ElemMul[T any](a, b *Array[T]) (*Array[T], error) {
	out, err := binaryOp(a, b, a.ops.mul)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	return out, nil
}

// ElemMulValue multiplies a by an arbitrary operand: plain numbers take the
// scalar fast path, everything else is coerced into an array of a's element
// kind and multiplied elementwise.
func ElemMulValue[T any](a *Array[T], v any) (*Array[T], error) {
	if _, numeric := numericToFloat(v); numeric {
		if s, ok := a.ops.cast(v); ok {
			return a.Scale(s), nil
		}
	}
	if rows, ok := v.([][]float64); ok && !rectangularRows(rows) {
		return nil, fmt.Errorf("mul: ragged nested rows: %w", ErrInvalidShape)
	}
	src, ok := coerce(v)
	if !ok {
		return nil, fmt.Errorf("mul: operand %T: %w", v, ErrUnsupported)
	}
	b, err := FromSource[T](src)
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	return ElemMul(a, b)
}
