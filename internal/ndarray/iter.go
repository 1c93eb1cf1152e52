package ndarray

// Traversal engine: generic walks over a shape that compute per-array flat
// buffer positions from each participating array's own strides and offset.
// Ranks 0, 1 and 2 get hand-specialized loops; higher ranks use an index
// odometer (increment the last axis, carry on overflow). All walks visit
// elements in row-major index order.

// odometerNext advances idx to the next multi-index of shape in row-major
// order, reporting false after the last index.
func odometerNext(idx []int, shape Shape) bool {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return true
		}
		idx[d] = 0
	}
	return false
}

// forEach visits the flat buffer position of every element of a layout.
func forEach(shape Shape, strides []int, offset int, fn func(flat int)) {
	switch len(shape) {
	case 0:
		fn(offset)
	case 1:
		s0 := strides[0]
		for i, f := 0, offset; i < shape[0]; i, f = i+1, f+s0 {
			fn(f)
		}
	case 2:
		s0, s1 := strides[0], strides[1]
		for i, row := 0, offset; i < shape[0]; i, row = i+1, row+s0 {
			for j, f := 0, row; j < shape[1]; j, f = j+1, f+s1 {
				fn(f)
			}
		}
	default:
		if shape.NumElements() == 0 {
			return
		}
		idx := make([]int, len(shape))
		for {
			f := offset
			for d, i := range idx {
				f += i * strides[d]
			}
			fn(f)
			if !odometerNext(idx, shape) {
				return
			}
		}
	}
}

// forEach2 visits paired flat positions of two arrays of identical shape,
// each addressed through its own strides and offset.
func forEach2(shape Shape, sa []int, oa int, sb []int, ob int, fn func(fa, fb int)) {
	switch len(shape) {
	case 0:
		fn(oa, ob)
	case 1:
		sa0, sb0 := sa[0], sb[0]
		for i, fa, fb := 0, oa, ob; i < shape[0]; i, fa, fb = i+1, fa+sa0, fb+sb0 {
			fn(fa, fb)
		}
	case 2:
		sa0, sa1 := sa[0], sa[1]
		sb0, sb1 := sb[0], sb[1]
		for i, ra, rb := 0, oa, ob; i < shape[0]; i, ra, rb = i+1, ra+sa0, rb+sb0 {
			for j, fa, fb := 0, ra, rb; j < shape[1]; j, fa, fb = j+1, fa+sa1, fb+sb1 {
				fn(fa, fb)
			}
		}
	default:
		if shape.NumElements() == 0 {
			return
		}
		idx := make([]int, len(shape))
		for {
			fa, fb := oa, ob
			for d, i := range idx {
				fa += i * sa[d]
				fb += i * sb[d]
			}
			fn(fa, fb)
			if !odometerNext(idx, shape) {
				return
			}
		}
	}
}

// forEach3 visits triples of flat positions across three arrays of identical
// shape, enabling fused allocation-free elementwise application.
func forEach3(shape Shape, sa []int, oa int, sb []int, ob int, sc []int, oc int, fn func(fa, fb, fc int)) {
	switch len(shape) {
	case 0:
		fn(oa, ob, oc)
	case 1:
		sa0, sb0, sc0 := sa[0], sb[0], sc[0]
		for i, fa, fb, fc := 0, oa, ob, oc; i < shape[0]; i, fa, fb, fc = i+1, fa+sa0, fb+sb0, fc+sc0 {
			fn(fa, fb, fc)
		}
	case 2:
		sa0, sa1 := sa[0], sa[1]
		sb0, sb1 := sb[0], sb[1]
		sc0, sc1 := sc[0], sc[1]
		for i, ra, rb, rc := 0, oa, ob, oc; i < shape[0]; i, ra, rb, rc = i+1, ra+sa0, rb+sb0, rc+sc0 {
			for j, fa, fb, fc := 0, ra, rb, rc; j < shape[1]; j, fa, fb, fc = j+1, fa+sa1, fb+sb1, fc+sc1 {
				fn(fa, fb, fc)
			}
		}
	default:
		if shape.NumElements() == 0 {
			return
		}
		idx := make([]int, len(shape))
		for {
			fa, fb, fc := oa, ob, oc
			for d, i := range idx {
				fa += i * sa[d]
				fb += i * sb[d]
				fc += i * sc[d]
			}
			fn(fa, fb, fc)
			if !odometerNext(idx, shape) {
				return
			}
		}
	}
}

// forEachUntil2 is forEach2 with short-circuiting: the walk stops as soon as
// fn returns false, and the overall result reports whether every visit
// returned true. Used by the equality kernel.
func forEachUntil2(shape Shape, sa []int, oa int, sb []int, ob int, fn func(fa, fb int) bool) bool {
	switch len(shape) {
	case 0:
		return fn(oa, ob)
	case 1:
		sa0, sb0 := sa[0], sb[0]
		for i, fa, fb := 0, oa, ob; i < shape[0]; i, fa, fb = i+1, fa+sa0, fb+sb0 {
			if !fn(fa, fb) {
				return false
			}
		}
		return true
	case 2:
		sa0, sa1 := sa[0], sa[1]
		sb0, sb1 := sb[0], sb[1]
		for i, ra, rb := 0, oa, ob; i < shape[0]; i, ra, rb = i+1, ra+sa0, rb+sb0 {
			for j, fa, fb := 0, ra, rb; j < shape[1]; j, fa, fb = j+1, fa+sa1, fb+sb1 {
				if !fn(fa, fb) {
					return false
				}
			}
		}
		return true
	default:
		if shape.NumElements() == 0 {
			return true
		}
		idx := make([]int, len(shape))
		for {
			fa, fb := oa, ob
			for d, i := range idx {
				fa += i * sa[d]
				fb += i * sb[d]
			}
			if !fn(fa, fb) {
				return false
			}
			if !odometerNext(idx, shape) {
				return true
			}
		}
	}
}
