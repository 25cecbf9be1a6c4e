// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer addressed through per-axis strides.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - New/FromSlice: O(n); At/Set: O(rank); Clone/Apply: O(n).

package tensor

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSet       = "Set"
)

// Dense is a row-major tensor of float64 values.
// shape holds the size of every axis, strides the flat step of every axis,
// and data holds prod(shape) elements. A rank-0 Dense holds one element.
type Dense struct {
	shape   []int     // size of each axis
	strides []int     // row-major strides, strides[rank-1] == 1
	data    []float64 // flat backing storage, len == prod(shape)
}

// denseErrorf wraps an error with a uniform Dense context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// volume returns prod(shape) or ErrBadShape when a dimension is not positive.
func volume(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// rowMajorStrides computes strides for a C-ordered layout.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}

	return strides
}

// New creates a zero-filled Dense with the given shape.
// Calling New with no dimensions yields a rank-0 scalar.
// Stage 1 (Validate): every dimension > 0.
// Stage 2 (Prepare): allocate flat storage and strides.
// Complexity: O(prod(shape)).
func New(shape ...int) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, denseErrorf(ctxNew, err)
	}
	s := append([]int(nil), shape...) // own the shape slice

	return &Dense{shape: s, strides: rowMajorStrides(s), data: make([]float64, n)}, nil
}

// FromSlice builds a Dense of the given shape over a copy of data.
// data is read in row-major order (last axis fastest).
// Complexity: O(len(data)).
func FromSlice(shape []int, data []float64) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, denseErrorf(ctxFromSlice, err)
	}
	if len(data) != n {
		return nil, denseErrorf(ctxFromSlice, ErrDimensionMismatch)
	}
	s := append([]int(nil), shape...)
	buf := make([]float64, n)
	copy(buf, data)

	return &Dense{shape: s, strides: rowMajorStrides(s), data: buf}, nil
}

// Vector is shorthand for a rank-1 Dense over a copy of values.
func Vector(values ...float64) (*Dense, error) {
	return FromSlice([]int{len(values)}, values)
}

// Rank returns the number of axes.
func (t *Dense) Rank() int { return len(t.shape) }

// Shape returns a copy of the axis sizes.
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Dim returns the size of axis, or 0 when axis is out of range.
func (t *Dense) Dim(axis int) int {
	if axis < 0 || axis >= len(t.shape) {
		return 0
	}

	return t.shape[axis]
}

// Len returns the total number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Data exposes the flat row-major backing slice. Mutations are visible in t.
func (t *Dense) Data() []float64 { return t.data }

// offset maps an index tuple to its flat position.
func (t *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * t.strides[k]
	}

	return off, nil
}

// At retrieves the element at idx.
// Returns ErrOutOfRange if the tuple has the wrong length or a coordinate is out of bounds.
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, denseErrorf(ctxAt, err)
	}

	return t.data[off], nil
}

// Set assigns v at idx.
// Complexity: O(rank).
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return denseErrorf(ctxSet, err)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(n).
func (t *Dense) Clone() *Dense {
	buf := make([]float64, len(t.data))
	copy(buf, t.data)

	return &Dense{
		shape:   append([]int(nil), t.shape...),
		strides: append([]int(nil), t.strides...),
		data:    buf,
	}
}

// Apply returns a new Dense with fn applied to every element.
// Complexity: O(n).
func (t *Dense) Apply(fn func(float64) float64) *Dense {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out
}

// Scale returns a new Dense with every element multiplied by f.
func (t *Dense) Scale(f float64) *Dense {
	return t.Apply(func(v float64) float64 { return v * f })
}

// String implements fmt.Stringer as "shape [..] data [..]".
func (t *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "shape %v data [", t.shape)
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")

	return sb.String()
}
