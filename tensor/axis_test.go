package tensor_test

import (
	"testing"

	"github.com/katalvlaran/loopybayes/tensor"
	"github.com/stretchr/testify/require"
)

func sum(lane []float64) float64 {
	s := 0.0
	for _, v := range lane {
		s += v
	}
	return s
}

// cube returns a 2×3×2 tensor with values 0..11.
func cube(t *testing.T) *tensor.Dense {
	t.Helper()
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	d, err := tensor.FromSlice([]int{2, 3, 2}, data)
	require.NoError(t, err)
	return d
}

// TestMapAxisEveryAxis reduces a rank-3 tensor along each axis in turn.
func TestMapAxisEveryAxis(t *testing.T) {
	tests := []struct {
		name  string
		axis  int
		shape []int
		want  []float64
	}{
		{"axis0", 0, []int{3, 2}, []float64{6, 8, 10, 12, 14, 16}},
		{"axis1", 1, []int{2, 2}, []float64{6, 9, 24, 27}},
		{"axis2", 2, []int{2, 3}, []float64{1, 5, 9, 13, 17, 21}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := cube(t).MapAxis(tc.axis, sum)
			require.NoError(t, err)
			require.Equal(t, tc.shape, out.Shape())
			require.Equal(t, tc.want, out.Data())
		})
	}
}

// TestMapAxisToScalar reduces a vector to a rank-0 tensor.
func TestMapAxisToScalar(t *testing.T) {
	d, err := tensor.Vector(1, 2, 3)
	require.NoError(t, err)

	out, err := d.MapAxis(0, sum)
	require.NoError(t, err)
	require.Equal(t, 0, out.Rank())
	require.Equal(t, []float64{6}, out.Data())
}

// TestMapAxisBadAxis ensures invalid axes are rejected.
func TestMapAxisBadAxis(t *testing.T) {
	_, err := cube(t).MapAxis(3, sum)
	require.ErrorIs(t, err, tensor.ErrAxisOutOfRange)

	_, err = cube(t).MapAxis(-1, sum)
	require.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
}

// TestInsertAxis places a size-1 axis at the requested position.
func TestInsertAxis(t *testing.T) {
	d, err := tensor.New(3, 2)
	require.NoError(t, err)

	front, err := d.InsertAxis(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 2}, front.Shape())

	back, err := d.InsertAxis(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, back.Shape())

	_, err = d.InsertAxis(3)
	require.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
}

// TestBroadcastSub subtracts keep-dim sums along every axis.
func TestBroadcastSub(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		d := cube(t)
		s, err := d.MapAxis(axis, sum)
		require.NoError(t, err)
		s, err = s.InsertAxis(axis)
		require.NoError(t, err)

		require.NoError(t, d.BroadcastSub(s))

		// after subtracting the lane sum, each lane sums to -(dim-1)*sum
		check, err := d.MapAxis(axis, sum)
		require.NoError(t, err)
		orig, _ := cube(t).MapAxis(axis, sum)
		for i, v := range check.Data() {
			dim := float64(cube(t).Dim(axis))
			require.InDelta(t, orig.Data()[i]*(1-dim), v, 1e-12)
		}
	}
}

// TestBroadcastSubMismatch rejects incompatible shapes.
func TestBroadcastSubMismatch(t *testing.T) {
	d := cube(t)
	b, err := tensor.New(2, 2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, d.BroadcastSub(b), tensor.ErrDimensionMismatch)

	r2, err := tensor.New(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, d.BroadcastSub(r2), tensor.ErrDimensionMismatch)
	require.ErrorIs(t, d.BroadcastSub(nil), tensor.ErrNilTensor)
}
