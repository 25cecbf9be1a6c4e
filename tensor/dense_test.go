// Package tensor_test contains unit tests for the Dense tensor.
package tensor_test

import (
	"testing"

	"github.com/katalvlaran/loopybayes/tensor"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidShape ensures New and FromSlice reject non-positive dimensions.
func TestNewInvalidShape(t *testing.T) {
	_, err := tensor.New(2, 0)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	_, err = tensor.FromSlice([]int{-1}, nil)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestFromSliceLengthMismatch ensures the data length must match the shape volume.
func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]int{2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestShapeAccessors checks Rank, Shape, Dim and Len.
func TestShapeAccessors(t *testing.T) {
	d, err := tensor.New(4, 3, 2)
	require.NoError(t, err)

	require.Equal(t, 3, d.Rank())
	require.Equal(t, []int{4, 3, 2}, d.Shape())
	require.Equal(t, 3, d.Dim(1))
	require.Equal(t, 0, d.Dim(3)) // out of range axis
	require.Equal(t, 24, d.Len())
}

// TestRowMajorLayout verifies FromSlice reads the last axis fastest.
func TestRowMajorLayout(t *testing.T) {
	d, err := tensor.FromSlice([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	v, err := d.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	v, err = d.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestAtSetOutOfRange ensures At and Set reject bad index tuples.
func TestAtSetOutOfRange(t *testing.T) {
	d, err := tensor.New(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	_, err = d.At(0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // wrong arity

	err = d.Set(1.0, 0, -1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	require.NoError(t, d.Set(9.5, 1, 1))
	v, err := d.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 9.5, v)
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	d, err := tensor.FromSlice([]int{2}, []float64{1, 2})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(5, 0))

	v, _ := d.At(0)
	require.Equal(t, 1.0, v)
}

// TestApplyScale checks elementwise mapping leaves the receiver untouched.
func TestApplyScale(t *testing.T) {
	d, err := tensor.Vector(1, 2, 3)
	require.NoError(t, err)

	sq := d.Apply(func(v float64) float64 { return v * v })
	require.Equal(t, []float64{1, 4, 9}, sq.Data())
	require.Equal(t, []float64{2, 4, 6}, d.Scale(2).Data())
	require.Equal(t, []float64{1, 2, 3}, d.Data())
}

// TestString gives a stable debug representation.
func TestString(t *testing.T) {
	d, err := tensor.FromSlice([]int{1, 2}, []float64{0.5, 1})
	require.NoError(t, err)
	require.Equal(t, "shape [1 2] data [0.5, 1]", d.String())
}
