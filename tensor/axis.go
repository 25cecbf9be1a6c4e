// SPDX-License-Identifier: MIT

// Package tensor - axis-wise kernels.
//
// A "lane" along axis k is the 1-D run of elements obtained by fixing every
// coordinate except k. In row-major storage, with outer = prod(shape[:k]) and
// inner = prod(shape[k+1:]), lane (o, i) holds the elements at
//
//	o*dim*inner + j*inner + i,   j = 0..dim-1
//
// Lanes are always visited o-major then i, which is exactly the row-major
// order of the reduced tensor.

package tensor

const (
	ctxMapAxis      = "MapAxis"
	ctxInsertAxis   = "InsertAxis"
	ctxBroadcastSub = "BroadcastSub"
)

// ValidateAxis ensures 0 ≤ axis < t.Rank().
func ValidateAxis(t *Dense, axis int) error {
	if t == nil {
		return tensorErrorf("ValidateAxis", ErrNilTensor)
	}
	if axis < 0 || axis >= len(t.shape) {
		return tensorErrorf("ValidateAxis", ErrAxisOutOfRange)
	}

	return nil
}

// laneGeometry returns (outer, dim, inner) for axis.
func (t *Dense) laneGeometry(axis int) (outer, dim, inner int) {
	outer, inner = 1, 1
	for k := 0; k < axis; k++ {
		outer *= t.shape[k]
	}
	for k := axis + 1; k < len(t.shape); k++ {
		inner *= t.shape[k]
	}

	return outer, t.shape[axis], inner
}

// MapAxis reduces axis by calling fn on every lane along it and returns a
// tensor with that axis removed. The lane slice passed to fn is a scratch
// buffer reused across calls; fn may modify it but must not retain it.
// Complexity: O(n) plus the cost of fn.
func (t *Dense) MapAxis(axis int, fn func(lane []float64) float64) (*Dense, error) {
	if err := ValidateAxis(t, axis); err != nil {
		return nil, denseErrorf(ctxMapAxis, err)
	}
	outer, dim, inner := t.laneGeometry(axis)

	shape := make([]int, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis+1:]...)
	out := &Dense{shape: shape, strides: rowMajorStrides(shape), data: make([]float64, outer*inner)}

	lane := make([]float64, dim)
	for o := 0; o < outer; o++ {
		base := o * dim * inner
		for i := 0; i < inner; i++ {
			for j := 0; j < dim; j++ {
				lane[j] = t.data[base+j*inner+i]
			}
			out.data[o*inner+i] = fn(lane)
		}
	}

	return out, nil
}

// InsertAxis returns a copy of t with a new size-1 axis at position axis
// (0 ≤ axis ≤ rank).
func (t *Dense) InsertAxis(axis int) (*Dense, error) {
	if axis < 0 || axis > len(t.shape) {
		return nil, denseErrorf(ctxInsertAxis, ErrAxisOutOfRange)
	}
	shape := make([]int, 0, len(t.shape)+1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[axis:]...)

	return FromSlice(shape, t.data)
}

// BroadcastSub computes t -= b in place. b must have the same rank as t and
// every dimension of b must equal t's or be 1 (broadcast).
// Complexity: O(n·rank).
func (t *Dense) BroadcastSub(b *Dense) error {
	if b == nil {
		return denseErrorf(ctxBroadcastSub, ErrNilTensor)
	}
	if len(b.shape) != len(t.shape) {
		return denseErrorf(ctxBroadcastSub, ErrDimensionMismatch)
	}
	// effective strides of b: 0 on broadcast axes
	bStrides := make([]int, len(t.shape))
	for k := range t.shape {
		switch b.shape[k] {
		case t.shape[k]:
			bStrides[k] = b.strides[k]
		case 1:
			bStrides[k] = 0
		default:
			return denseErrorf(ctxBroadcastSub, ErrDimensionMismatch)
		}
	}

	idx := make([]int, len(t.shape)) // odometer over t in row-major order
	bOff := 0
	for n := range t.data {
		t.data[n] -= b.data[bOff]
		// advance the odometer, last axis fastest
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			bOff += bStrides[k]
			if idx[k] < t.shape[k] {
				break
			}
			bOff -= bStrides[k] * idx[k]
			idx[k] = 0
		}
	}

	return nil
}
