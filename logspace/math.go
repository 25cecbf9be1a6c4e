// SPDX-License-Identifier: MIT

// Package logspace - tensor reductions in log-space.
//
// All reductions visit lanes in the deterministic order defined by
// tensor.Dense.MapAxis, so results are bitwise reproducible across runs.

package logspace

import (
	"math"

	"github.com/katalvlaran/loopybayes/tensor"
	"gonum.org/v1/gonum/floats"
)

// LogSumExpVec returns log(Σ exp(x_i)) computed around the maximum entry m:
//   - m == +Inf ⇒ +Inf
//   - m == -Inf (every entry impossible) ⇒ -Inf, never NaN
//   - otherwise m + log(Σ exp(x_i - m))
//
// x must not be empty.
// Complexity: O(len(x)).
func LogSumExpVec(x []float64) float64 {
	return floats.LogSumExp(x)
}

// LogSumExp reduces t along axis with LogSumExpVec; the axis is removed.
func LogSumExp(t *tensor.Dense, axis int) (*tensor.Dense, error) {
	if t == nil {
		return nil, logspaceErrorf("LogSumExp", ErrNilOperand)
	}
	out, err := t.MapAxis(axis, LogSumExpVec)
	if err != nil {
		return nil, logspaceErrorf("LogSumExp", err)
	}

	return out, nil
}

// LogSumExpKeepDim is LogSumExp with the reduced axis kept at size 1, so the
// result broadcasts against t.
func LogSumExpKeepDim(t *tensor.Dense, axis int) (*tensor.Dense, error) {
	out, err := LogSumExp(t, axis)
	if err != nil {
		return nil, err
	}

	return out.InsertAxis(axis)
}

// LogContract adds v to every lane of t along axis and reduces each lane
// with LogSumExpVec. len(v) must equal t.Dim(axis).
//
// With t a log-table and v a log-message over the values of that axis, the
// result is log Σ_x exp(t(..., x, ...) + v(x)).
// Complexity: O(t.Len()).
func LogContract(t *tensor.Dense, v []float64, axis int) (*tensor.Dense, error) {
	if t == nil {
		return nil, logspaceErrorf("LogContract", ErrNilOperand)
	}
	if err := tensor.ValidateAxis(t, axis); err != nil {
		return nil, logspaceErrorf("LogContract", err)
	}
	if len(v) != t.Dim(axis) {
		return nil, logspaceErrorf("LogContract", ErrLengthMismatch)
	}

	return t.MapAxis(axis, func(lane []float64) float64 {
		floats.Add(lane, v) // lane is scratch, safe to overwrite
		return LogSumExpVec(lane)
	})
}

// NormalizeLogProbas makes every lane along axis 0 a proper log-distribution
// (exp of the lane sums to 1) by subtracting LogSumExpKeepDim(t, 0) in place.
// Lanes that are entirely -Inf stay -Inf.
func NormalizeLogProbas(t *tensor.Dense) error {
	lse, err := LogSumExpKeepDim(t, 0)
	if err != nil {
		return logspaceErrorf("NormalizeLogProbas", err)
	}
	// -Inf - (-Inf) is NaN; leave impossible lanes untouched instead.
	for i, v := range lse.Data() {
		if math.IsInf(v, -1) {
			lse.Data()[i] = 0
		}
	}
	if err = t.BroadcastSub(lse); err != nil {
		return logspaceErrorf("NormalizeLogProbas", err)
	}

	return nil
}
