package ndarray

import "fmt"

// External capabilities consumed by the core. The generic array-operations
// façade above this package supplies interchangeable implementations; the
// defaults below keep the core usable standalone.

// Source is the shape-query capability: the minimal protocol any foreign
// array-like value must expose to be consumed by FromSource and by coercion
// fallbacks. Array itself implements Source.
type Source interface {
	// Shape returns the ordered per-axis extents.
	Shape() Shape
	// Dims returns the dimensionality (rank).
	Dims() int
	// Get returns the element at a full multi-index.
	Get(indices ...int) any
}

// Broadcaster is the broadcast-resolution capability, invoked once when a
// binary elementwise operation receives mismatched shapes. It returns the
// common shape both operands align to, a flag indicating whether alignment
// is actually needed, and an error when the shapes are incompatible.
type Broadcaster interface {
	BroadcastShapes(a, b Shape) (Shape, bool, error)
}

// Coercer is the coercion capability, invoked when a binary operation
// receives an operand of a foreign representation. It converts the value
// into a Source the core can consume, reporting false for values it does
// not recognize.
type Coercer interface {
	Coerce(v any) (Source, bool)
}

var (
	activeBroadcaster Broadcaster = StdBroadcaster{}
	activeCoercer     Coercer
)

// SetBroadcaster installs the broadcast-resolution capability.
// Passing nil restores the default NumPy-style broadcaster.
func SetBroadcaster(b Broadcaster) {
	if b == nil {
		activeBroadcaster = StdBroadcaster{}
		return
	}
	activeBroadcaster = b
}

// SetCoercer installs the coercion capability consulted after the built-in
// conversions (Source values, nested float64 slices, plain numbers).
func SetCoercer(c Coercer) {
	activeCoercer = c
}

// StdBroadcaster implements NumPy-style broadcasting rules: shapes are
// compared right-aligned, axes are compatible when equal or when one is 1,
// and missing axes are treated as 1.
type StdBroadcaster struct{}

// BroadcastShapes resolves the common shape of a and b.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, error
func (StdBroadcaster) BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes %v and %v differ on axis %d (%d vs %d): %w",
				a, b, maxLen-1-i, aDim, bDim, ErrShapeMismatch)
		}
	}
	if len(a) != len(b) {
		needsBroadcast = true
	}
	return result, needsBroadcast, nil
}

// coerce converts an arbitrary value into a Source: Source values pass
// through, nested float64 slices and plain numbers get built-in adapters,
// and anything else is offered to the installed Coercer.
func coerce(v any) (Source, bool) {
	switch x := v.(type) {
	case Source:
		return x, true
	case []float64:
		return sliceSource{data: x}, true
	case [][]float64:
		if !rectangularRows(x) {
			return nil, false
		}
		cols := 0
		if len(x) > 0 {
			cols = len(x[0])
		}
		return nestedSource{rows: x, cols: cols}, true
	}
	if _, ok := numericToFloat(v); ok {
		return scalarSource{v: v}, true
	}
	if activeCoercer != nil {
		return activeCoercer.Coerce(v)
	}
	return nil, false
}

type scalarSource struct{ v any }

func (s scalarSource) Shape() Shape { return Shape{} }
func (s scalarSource) Dims() int    { return 0 }
func (s scalarSource) Get(indices ...int) any {
	return s.v
}

type sliceSource struct{ data []float64 }

func (s sliceSource) Shape() Shape { return Shape{len(s.data)} }
func (s sliceSource) Dims() int    { return 1 }
func (s sliceSource) Get(indices ...int) any {
	return s.data[indices[0]]
}

// rectangularRows reports whether every row has the length of the first.
// Ragged nested slices describe no shape and must never reach a Source.
func rectangularRows(rows [][]float64) bool {
	if len(rows) == 0 {
		return true
	}
	cols := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != cols {
			return false
		}
	}
	return true
}

type nestedSource struct {
	rows [][]float64
	cols int
}

func (s nestedSource) Shape() Shape { return Shape{len(s.rows), s.cols} }
func (s nestedSource) Dims() int    { return 2 }
func (s nestedSource) Get(indices ...int) any {
	return s.rows[indices[0]][indices[1]]
}
