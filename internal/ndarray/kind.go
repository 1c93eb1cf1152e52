// Package ndarray implements a dense, strided, multi-dimensional array over
// a shared linear buffer: zero-copy views, broadcasting elementwise
// arithmetic, dense matrix products and the traversal engine behind them.
package ndarray

import (
	"fmt"
	"reflect"
)

// Kind is the runtime tag for an array's element kind.
type Kind int

// Supported element kinds. Boxed arrays hold arbitrary values (Array[any]);
// arithmetic on them is resolved per element at runtime.
const (
	Int64 Kind = iota
	Float32
	Float64
	Boxed
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Boxed:
		return "boxed"
	default:
		return "unknown"
	}
}

// elemOps is the element-kind trait: identities and closed operations every
// kernel is written against. One static table exists per kind; opsFor
// resolves it once at construction.
type elemOps[T any] struct {
	kind Kind
	zero T
	one  T

	add func(a, b T) T
	sub func(a, b T) T
	mul func(a, b T) T
	neg func(a T) T
	eq  func(a, b T) bool

	// toFloat reports false for non-numeric boxed values.
	toFloat   func(a T) (float64, bool)
	fromFloat func(v float64) T

	// cast converts an arbitrary value into the element kind, reporting
	// false when the value is not representable.
	cast func(v any) (T, bool)
}

var int64Ops = elemOps[int64]{
	kind:      Int64,
	zero:      0,
	one:       1,
	add:       func(a, b int64) int64 { return a + b },
	sub:       func(a, b int64) int64 { return a - b },
	mul:       func(a, b int64) int64 { return a * b },
	neg:       func(a int64) int64 { return -a },
	eq:        func(a, b int64) bool { return a == b },
	toFloat:   func(a int64) (float64, bool) { return float64(a), true },
	fromFloat: func(v float64) int64 { return int64(v) },
	cast:      castInt64,
}

var float32Ops = elemOps[float32]{
	kind:      Float32,
	zero:      0,
	one:       1,
	add:       func(a, b float32) float32 { return a + b },
	sub:       func(a, b float32) float32 { return a - b },
	mul:       func(a, b float32) float32 { return a * b },
	neg:       func(a float32) float32 { return -a },
	eq:        func(a, b float32) bool { return a == b },
	toFloat:   func(a float32) (float64, bool) { return float64(a), true },
	fromFloat: func(v float64) float32 { return float32(v) },
	cast:      castFloat32,
}

var float64Ops = elemOps[float64]{
	kind:      Float64,
	zero:      0,
	one:       1,
	add:       func(a, b float64) float64 { return a + b },
	sub:       func(a, b float64) float64 { return a - b },
	mul:       func(a, b float64) float64 { return a * b },
	neg:       func(a float64) float64 { return -a },
	eq:        func(a, b float64) bool { return a == b },
	toFloat:   func(a float64) (float64, bool) { return a, true },
	fromFloat: func(v float64) float64 { return v },
	cast:      castFloat64,
}

var boxedOps = elemOps[any]{
	kind:      Boxed,
	zero:      float64(0),
	one:       float64(1),
	add:       func(a, b any) any { return boxedArith(a, b, '+') },
	sub:       func(a, b any) any { return boxedArith(a, b, '-') },
	mul:       func(a, b any) any { return boxedArith(a, b, '*') },
	neg:       boxedNeg,
	eq:        boxedEq,
	toFloat:   numericToFloat,
	fromFloat: func(v float64) any { return v },
	cast:      func(v any) (any, bool) { return v, true },
}

// opsFor resolves the static trait table for element type T. Supported
// instantiations are Array[int64], Array[float32], Array[float64] and the
// boxed Array[any]; anything else is a programmer error.
func opsFor[T any]() *elemOps[T] {
	var dummy T
	switch any(dummy).(type) {
	case int64:
		return any(&int64Ops).(*elemOps[T])
	case float32:
		return any(&float32Ops).(*elemOps[T])
	case float64:
		return any(&float64Ops).(*elemOps[T])
	}
	if ops, ok := any(&boxedOps).(*elemOps[T]); ok {
		return ops
	}
	panic(fmt.Sprintf("ndarray: unsupported element type %T", dummy))
}

// numericToFloat widens any supported numeric value to float64.
func numericToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

func castInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	case float32:
		return int64(x), true
	}
	return 0, false
}

func castFloat32(v any) (float32, bool) {
	if f, ok := numericToFloat(v); ok {
		return float32(f), true
	}
	return 0, false
}

func castFloat64(v any) (float64, bool) {
	return numericToFloat(v)
}

// boxedArith applies op to two boxed operands. Pairs of int64 stay int64;
// everything else is widened to float64. Non-numeric operands are a
// programmer error.
func boxedArith(a, b any, op byte) any {
	if ai, ok := a.(int64); ok {
		if bi, ok := b.(int64); ok {
			switch op {
			case '+':
				return ai + bi
			case '-':
				return ai - bi
			case '*':
				return ai * bi
			}
		}
	}

	af, aok := numericToFloat(a)
	bf, bok := numericToFloat(b)
	if !aok || !bok {
		panic(fmt.Sprintf("ndarray: arithmetic on non-numeric boxed values %T and %T", a, b))
	}
	switch op {
	case '+':
		return af + bf
	case '-':
		return af - bf
	case '*':
		return af * bf
	default:
		panic(fmt.Sprintf("ndarray: unknown boxed operator %q", op))
	}
}

// boxedNeg negates a boxed numeric value, preserving int64.
func boxedNeg(a any) any {
	if ai, ok := a.(int64); ok {
		return -ai
	}
	af, ok := numericToFloat(a)
	if !ok {
		panic(fmt.Sprintf("ndarray: negation of non-numeric boxed value %T", a))
	}
	return -af
}

// boxedEq compares boxed elements numerically when both are numbers, and
// structurally otherwise.
func boxedEq(a, b any) bool {
	if af, ok := numericToFloat(a); ok {
		if bf, ok := numericToFloat(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
