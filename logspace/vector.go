// SPDX-License-Identifier: MIT

// Package logspace - Vector, an unnormalized log-probability vector.
//
// Lifecycle: created uniform, deterministic or from raw log-values; mutated
// in place by Prod and Renormalize; Reset back to uniform when an inference
// run restarts.

package logspace

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a discrete distribution over n values stored as natural-log,
// possibly unnormalized, probabilities. No entry is +Inf; -Inf means the
// value is impossible.
type Vector struct {
	logp []float64
}

// Uniform returns the all-zero log-vector of length n (unnormalized uniform).
func Uniform(n int) *Vector {
	return &Vector{logp: make([]float64, n)}
}

// Deterministic returns a vector putting all mass on value i: every entry is
// -Inf except i, which is 0. When i is outside [0, n) every entry is -Inf,
// a vector with no mass at all.
func Deterministic(n, i int) *Vector {
	logp := make([]float64, n)
	for k := range logp {
		logp[k] = math.Inf(-1)
	}
	if i >= 0 && i < n {
		logp[i] = 0
	}

	return &Vector{logp: logp}
}

// FromLogProbabilities wraps a copy of values. The caller guarantees that no
// entry is +Inf.
func FromLogProbabilities(values []float64) *Vector {
	return &Vector{logp: append([]float64(nil), values...)}
}

// FromProbabilities takes the natural log of every entry of p.
// p needs no normalization; zero entries become -Inf.
func FromProbabilities(p []float64) *Vector {
	logp := make([]float64, len(p))
	for i, v := range p {
		logp[i] = math.Log(v)
	}

	return &Vector{logp: logp}
}

// Len returns the number of values.
func (v *Vector) Len() int { return len(v.logp) }

// At returns the log-probability of value i. It panics if i is out of range,
// like a slice index.
func (v *Vector) At(i int) float64 { return v.logp[i] }

// LogProbabilities returns a copy of the underlying log-values.
func (v *Vector) LogProbabilities() []float64 {
	return append([]float64(nil), v.logp...)
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	return FromLogProbabilities(v.logp)
}

// Probabilities returns the normalized distribution exp(x_i - lse(x)).
// Shifting by the log-sum-exp before exponentiating keeps very small or very
// large log values from underflowing to 0 or overflowing to +Inf. If every
// entry is -Inf the all-zero vector is returned, which signals an impossible
// evidence combination.
func (v *Vector) Probabilities() []float64 {
	p := make([]float64, len(v.logp))
	if len(p) == 0 {
		return p
	}
	lse := LogSumExpVec(v.logp)
	if math.IsInf(lse, -1) {
		return p
	}
	for i, lp := range v.logp {
		p[i] = math.Exp(lp - lse)
	}
	// exp rounding can leave the sum a few ulps off 1
	floats.Scale(1/floats.Sum(p), p)

	return p
}

// Renormalize subtracts the log-sum-exp from every entry so that the
// exponentiated entries sum to 1. An all -Inf vector is left unchanged.
// Renormalize is idempotent.
func (v *Vector) Renormalize() {
	if len(v.logp) == 0 {
		return
	}
	lse := LogSumExpVec(v.logp)
	if math.IsInf(lse, -1) {
		return
	}
	floats.AddConst(-lse, v.logp)
}

// Prod multiplies other into v in probability space, i.e. adds the
// log-values. The result is generally no longer normalized.
func (v *Vector) Prod(other *Vector) error {
	if other == nil {
		return logspaceErrorf("Vector.Prod", ErrNilOperand)
	}
	if len(other.logp) != len(v.logp) {
		return logspaceErrorf("Vector.Prod", ErrLengthMismatch)
	}
	floats.Add(v.logp, other.logp)

	return nil
}

// Reset sets every entry back to 0 (uniform).
func (v *Vector) Reset() {
	for i := range v.logp {
		v.logp[i] = 0
	}
}

// LogOdds returns (log p[a] - log p[b]) expressed in the given logarithm
// base, e.g. base 10 for decibans-style evidence ratios.
func (v *Vector) LogOdds(a, b int, base float64) float64 {
	return (v.logp[a] - v.logp[b]) / math.Log(base)
}

// String renders the normalized probabilities, e.g. "[0.25 0.75]".
func (v *Vector) String() string {
	p := v.Probabilities()
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = fmt.Sprintf("%.4g", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
