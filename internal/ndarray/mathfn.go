package ndarray

import (
	"fmt"
	"math"
	"sort"
)

// Named elementwise math-function registry. For each registered unary
// function the core derives a cloning map (ApplyFunc) and an in-place map
// (ApplyFuncInPlace). Functions compute in float64 and cast back through the
// element-kind trait.

var mathFuncs = map[string]func(float64) float64{
	"abs":   math.Abs,
	"exp":   math.Exp,
	"log":   math.Log,
	"sqrt":  math.Sqrt,
	"rsqrt": func(v float64) float64 { return 1 / math.Sqrt(v) },
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

// RegisterFunc adds or replaces a named unary math function.
func RegisterFunc(name string, fn func(float64) float64) {
	mathFuncs[name] = fn
}

// MathFuncNames returns the registered function names in sorted order.
func MathFuncNames() []string {
	names := make([]string, 0, len(mathFuncs))
	for name := range mathFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyFunc applies the named function elementwise, returning a fresh array.
// Fails with ErrUnsupported on unknown names or non-numeric boxed elements.
func ApplyFunc[T any](a *Array[T], name string) (*Array[T], error) {
	fn, ok := mathFuncs[name]
	if !ok {
		return nil, fmt.Errorf("math function %q: %w", name, ErrUnsupported)
	}
	return applyFloat(a, fn)
}

// ApplyFuncInPlace applies the named function elementwise through the shared
// buffer.
func ApplyFuncInPlace[T any](a *Array[T], name string) error {
	fn, ok := mathFuncs[name]
	if !ok {
		return fmt.Errorf("math function %q: %w", name, ErrUnsupported)
	}
	return applyFloatInPlace(a, fn)
}

// applyFloat maps a float64 function over the array into a fresh result.
func applyFloat[T any](a *Array[T], fn func(float64) float64) (*Array[T], error) {
	out, err := Empty[T](a.shape)
	if err != nil {
		return nil, err
	}
	toFloat, fromFloat := a.ops.toFloat, a.ops.fromFloat
	dst := out.buf.data
	src := a.buf.data
	i := 0
	var badElem error
	forEach(a.shape, a.strides, a.offset, func(flat int) {
		v, ok := toFloat(src[flat])
		if !ok && badElem == nil {
			badElem = fmt.Errorf("non-numeric element %T: %w", src[flat], ErrUnsupported)
		}
		dst[i] = fromFloat(fn(v))
		i++
	})
	if badElem != nil {
		return nil, badElem
	}
	return out, nil
}

func applyFloatInPlace[T any](a *Array[T], fn func(float64) float64) error {
	toFloat, fromFloat := a.ops.toFloat, a.ops.fromFloat
	data := a.buf.data

	// Validate before writing: a mid-way failure must not leave the shared
	// buffer partially mapped.
	if a.ops.kind == Boxed {
		var badElem error
		forEach(a.shape, a.strides, a.offset, func(flat int) {
			if _, ok := toFloat(data[flat]); !ok && badElem == nil {
				badElem = fmt.Errorf("non-numeric element %T: %w", data[flat], ErrUnsupported)
			}
		})
		if badElem != nil {
			return badElem
		}
	}

	forEach(a.shape, a.strides, a.offset, func(flat int) {
		v, _ := toFloat(data[flat])
		data[flat] = fromFloat(fn(v))
	})
	return nil
}
