package ndarray

import (
	"errors"
	"testing"
)

func TestZerosAndOnes(t *testing.T) {
	z, err := Zeros[float64](Shape{2, 3})
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if z.At(i, j) != 0 {
				t.Errorf("Zeros[%d,%d] = %v, want 0", i, j, z.At(i, j))
			}
		}
	}

	o, err := Ones[int64](Shape{4})
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if o.At(i) != 1 {
			t.Errorf("Ones[%d] = %v, want 1", i, o.At(i))
		}
	}
}

func TestZerosBoxed(t *testing.T) {
	z, err := Zeros[any](Shape{2})
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	// Boxed zero is float64(0), not nil.
	if z.At(0) != any(float64(0)) {
		t.Errorf("boxed zero = %v, want float64(0)", z.At(0))
	}
	if z.Kind() != Boxed {
		t.Errorf("Kind() = %v, want Boxed", z.Kind())
	}
}

func TestConstructorInvalidShape(t *testing.T) {
	if _, err := Empty[float64](Shape{2, -1}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Empty with negative extent: got %v, want ErrInvalidShape", err)
	}
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("FromSlice with inconsistent shape: got %v, want ErrInvalidShape", err)
	}
}

func TestFreshArrayIsPackedRowMajor(t *testing.T) {
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	a, err := FromSlice(data, Shape{4, 3, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !intsEqual(a.Strides(), []int{6, 2, 1}) {
		t.Fatalf("strides = %v, want [6 2 1]", a.Strides())
	}
	if !a.IsContiguous() {
		t.Fatal("fresh array not contiguous")
	}

	// Walking in row-major index order must visit buffer positions
	// consecutively from the offset.
	next := a.Offset()
	forEach(a.Shape(), a.Strides(), a.Offset(), func(flat int) {
		if flat != next {
			t.Fatalf("visited position %d, want %d", flat, next)
		}
		next++
	})
}

func TestAtSetRoundTrip(t *testing.T) {
	a, _ := Zeros[float64](Shape{3, 3})
	a.Set(42, 1, 2)
	if got := a.At(1, 2); got != 42 {
		t.Errorf("At(1,2) = %v, want 42", got)
	}

	// Index misuse is a programmer error and panics.
	defer func() {
		if recover() == nil {
			t.Error("At with wrong arity did not panic")
		}
	}()
	a.At(1)
}

func TestEye(t *testing.T) {
	id, err := Eye[float64](3)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float64(0)
			if i == j {
				want = 1
			}
			if id.At(i, j) != want {
				t.Errorf("Eye[%d,%d] = %v, want %v", i, j, id.At(i, j), want)
			}
		}
	}
}

func TestArange(t *testing.T) {
	a, err := Arange[int64](2, 7)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	assertShapeEqual(t, Shape{5}, a.Shape(), "Arange shape")
	for i := 0; i < 5; i++ {
		if a.At(i) != int64(2+i) {
			t.Errorf("Arange[%d] = %v, want %d", i, a.At(i), 2+i)
		}
	}
}

func TestScalar(t *testing.T) {
	s := Scalar(3.5)
	if s.Rank() != 0 {
		t.Fatalf("Rank() = %d, want 0", s.Rank())
	}
	if s.Item() != 3.5 {
		t.Errorf("Item() = %v, want 3.5", s.Item())
	}
	if !intsEqual(s.Strides(), []int{1}) {
		t.Errorf("scalar strides = %v, want [1]", s.Strides())
	}
}

func TestFromSource(t *testing.T) {
	src, _ := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	// An Array is itself a Source; convert across element kinds.
	f, err := FromSource[float64](src)
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}
	assertShapeEqual(t, Shape{2, 3}, f.Shape(), "FromSource shape")
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if f.At(i, j) != float64(src.At(i, j)) {
				t.Errorf("element [%d,%d] = %v, want %v", i, j, f.At(i, j), src.At(i, j))
			}
		}
	}
}

// countingSource yields unrepresentable elements and records how often each
// index is queried.
type countingSource struct {
	calls int
}

func (s *countingSource) Shape() Shape { return Shape{3} }
func (s *countingSource) Dims() int    { return 1 }
func (s *countingSource) Get(indices ...int) any {
	s.calls++
	return "not a number"
}

func TestFromSourceQueriesEachElementOnce(t *testing.T) {
	src := &countingSource{}
	if _, err := FromSource[float64](src); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("FromSource of non-numeric source: got %v, want ErrUnsupported", err)
	}
	// The failing element must not be re-queried to build the error.
	if src.calls != 1 {
		t.Errorf("Get called %d times, want 1", src.calls)
	}
}

func TestBufferAliasCounting(t *testing.T) {
	a, _ := Zeros[float64](Shape{2, 2})
	if !a.IsUnique() {
		t.Fatal("fresh array should be the unique buffer reference")
	}

	v := a.Transpose()
	if a.IsUnique() {
		t.Error("array with a live view reported unique")
	}

	v.Release()
	if !a.IsUnique() {
		t.Error("releasing the view should restore uniqueness")
	}

	// Clone never aliases.
	c := a.Clone()
	if !a.IsUnique() || !c.IsUnique() {
		t.Error("Clone must not share the buffer")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		str  string
	}{
		{Int64, "int64"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Boxed, "boxed"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.str {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.str)
		}
	}
}
