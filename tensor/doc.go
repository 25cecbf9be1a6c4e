// Package tensor provides a small dense N-dimensional float64 array used to
// hold conditional probability tables.
//
// The tensor package provides:
//
//   - Dense, a row-major buffer with an arbitrary shape (rank 0 included).
//   - Bounds-checked accessors (At/Set) that return errors instead of panicking.
//   - Axis-wise reduction (MapAxis), the primitive behind every log-space
//     reduction in package logspace.
//   - InsertAxis and a broadcasting in-place subtraction (BroadcastSub) for
//     keep-dim arithmetic.
//
// Lanes are visited in a fixed order (outer index, then inner index), so every
// reduction is deterministic.
//
// Quick example, a 2×3 table reduced along axis 0:
//
//	t, _ := tensor.FromSlice([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	s, _ := t.MapAxis(0, func(l []float64) float64 { return l[0] + l[1] })
//	// s has shape [3] and data [5 7 9]
package tensor
