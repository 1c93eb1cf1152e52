package ndarray

import (
	"fmt"

	"github.com/SwamWithTurtles/core.matrix/internal/parallel"
)

// Dense matrix-multiply and fused-product kernels. The 2D kernel runs the
// triple loop in i (rows of a), k (inner), j (cols of b) order: a[i][k] is
// loaded once per (i,k) and reused across the whole j sweep, which keeps the
// b and c row accesses sequential for row-major layouts.

// MatMul computes the matrix product of a and b.
//
// Rank handling:
//   - rank(b) == 0: scalar scale of a
//   - 1×2: a is promoted to a 1×n row, the result demoted back to rank 1
//   - 2×1: b is promoted to an n×1 column, the result demoted back to rank 1
//   - 2×2: dense multiply, requiring a.cols == b.rows
//
// Any other rank combination fails with ErrUnsupported.
func MatMul[T any](a, b *Array[T]) (*Array[T], error) {
	switch {
	case b.Rank() == 0:
		return a.Scale(b.Item()), nil

	case a.Rank() == 1 && b.Rank() == 2:
		row := a.Restride(Shape{1, a.shape[0]}, []int{a.shape[0] * a.strides[0], a.strides[0]}, a.offset)
		out, err := matMul2D(row, b)
		if err != nil {
			return nil, err
		}
		return out.Restride(Shape{out.shape[1]}, []int{out.strides[1]}, out.offset), nil

	case a.Rank() == 2 && b.Rank() == 1:
		col := b.Restride(Shape{b.shape[0], 1}, []int{b.strides[0], b.strides[0]}, b.offset)
		out, err := matMul2D(a, col)
		if err != nil {
			return nil, err
		}
		return out.Restride(Shape{out.shape[0]}, []int{out.strides[0]}, out.offset), nil

	case a.Rank() == 2 && b.Rank() == 2:
		return matMul2D(a, b)

	default:
		return nil, fmt.Errorf("matmul of rank %d by rank %d: %w", a.Rank(), b.Rank(), ErrUnsupported)
	}
}

// matMul2D multiplies two rank-2 arrays into a fresh zeroed result.
func matMul2D[T any](a, b *Array[T]) (*Array[T], error) {
	m, k := a.shape[0], a.shape[1]
	kAlt, n := b.shape[0], b.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("matmul [%d,%d] by [%d,%d]: %w", m, k, kAlt, n, ErrDimensionMismatch)
	}

	c, err := Zeros[T](Shape{m, n})
	if err != nil {
		return nil, err
	}
	accumulateProduct(c, a, b, c.ops.one)
	return c, nil
}

// accumulateProduct adds factor*(a·b) into dst, all operands addressed
// through their own strides. Inner dimensions must already be validated.
func accumulateProduct[T any](dst, a, b *Array[T], factor T) {
	m, k := a.shape[0], a.shape[1]
	n := b.shape[1]

	add, mul := dst.ops.add, dst.ops.mul
	da, db, dc := a.buf.data, b.buf.data, dst.buf.data
	ars, acs := a.strides[0], a.strides[1]
	brs, bcs := b.strides[0], b.strides[1]
	crs, ccs := dst.strides[0], dst.strides[1]

	scaled := !dst.ops.eq(factor, dst.ops.one)
	row := func(i int) {
		aRow := a.offset + i*ars
		cRow := dst.offset + i*crs
		for kk := 0; kk < k; kk++ {
			aik := da[aRow+kk*acs]
			if scaled {
				aik = mul(aik, factor)
			}
			bRow := b.offset + kk*brs
			for j := 0; j < n; j++ {
				ci := cRow + j*ccs
				dc[ci] = add(dc[ci], mul(aik, db[bRow+j*bcs]))
			}
		}
	}

	// Rows of dst are disjoint, so they shard safely. Only spread the work
	// when each row carries enough multiplies to repay a goroutine.
	if k*n >= rowShardWork {
		cfg := parallel.Default()
		cfg.Grain = 1
		parallel.For(m, row, cfg)
		return
	}
	for i := 0; i < m; i++ {
		row(i)
	}
}

// rowShardWork is the per-row multiply count above which the kernel shards
// rows across goroutines.
const rowShardWork = 1 << 14

// requireFusedShapes validates the fused-product contract: dst, a and b must
// share one shape exactly, rank 2, and the product a·b must be defined.
func requireFusedShapes[T any](dst, a, b *Array[T]) error {
	if dst.Rank() != 2 || !dst.shape.Equal(a.shape) || !dst.shape.Equal(b.shape) {
		return fmt.Errorf("fused product over %v, %v, %v: %w", dst.shape, a.shape, b.shape, ErrShapeMismatch)
	}
	if a.shape[1] != b.shape[0] {
		return fmt.Errorf("fused product [%d,%d] by [%d,%d]: %w",
			a.shape[0], a.shape[1], b.shape[0], b.shape[1], ErrDimensionMismatch)
	}
	return nil
}

// AddProduct returns m + a·b without modifying m.
func AddProduct[T any](m, a, b *Array[T]) (*Array[T], error) {
	if err := requireFusedShapes(m, a, b); err != nil {
		return nil, err
	}
	out := m.Clone()
	accumulateProduct(out, a, b, out.ops.one)
	return out, nil
}

// AddProductInPlace adds a·b into m through its shared buffer.
func AddProductInPlace[T any](m, a, b *Array[T]) error {
	if err := requireFusedShapes(m, a, b); err != nil {
		return err
	}
	accumulateProduct(m, a, b, m.ops.one)
	return nil
}

// AddScaledProduct returns m + factor*(a·b) without modifying m.
func AddScaledProduct[T any](m, a, b *Array[T], factor T) (*Array[T], error) {
	if err := requireFusedShapes(m, a, b); err != nil {
		return nil, err
	}
	out := m.Clone()
	accumulateProduct(out, a, b, factor)
	return out, nil
}

// AddScaledProductInPlace adds factor*(a·b) into m through its shared buffer.
func AddScaledProductInPlace[T any](m, a, b *Array[T], factor T) error {
	if err := requireFusedShapes(m, a, b); err != nil {
		return err
	}
	accumulateProduct(m, a, b, factor)
	return nil
}

// AddScaled returns m + factor*a elementwise. Shapes must match exactly.
func AddScaled[T any](m, a *Array[T], factor T) (*Array[T], error) {
	if !m.shape.Equal(a.shape) {
		return nil, fmt.Errorf("add scaled over %v and %v: %w", m.shape, a.shape, ErrShapeMismatch)
	}
	out, err := Empty[T](m.shape)
	if err != nil {
		return nil, err
	}
	add, mul := m.ops.add, m.ops.mul
	dm, da, dst := m.buf.data, a.buf.data, out.buf.data
	forEach3(m.shape, m.strides, m.offset, a.strides, a.offset, out.strides, 0, func(fm, fa, fo int) {
		dst[fo] = add(dm[fm], mul(da[fa], factor))
	})
	return out, nil
}

// AddScaledInPlace adds factor*a into m through its shared buffer.
func AddScaledInPlace[T any](m, a *Array[T], factor T) error {
	if !m.shape.Equal(a.shape) {
		return fmt.Errorf("add scaled over %v and %v: %w", m.shape, a.shape, ErrShapeMismatch)
	}
	add, mul := m.ops.add, m.ops.mul
	dm, da := m.buf.data, a.buf.data
	forEach2(m.shape, m.strides, m.offset, a.strides, a.offset, func(fm, fa int) {
		dm[fm] = add(dm[fm], mul(da[fa], factor))
	})
	return nil
}
