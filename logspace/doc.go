// Package logspace holds the numerically stable log-space arithmetic behind
// belief propagation.
//
// Probabilities are stored as natural logarithms. A Vector is an
// unnormalized log-probability vector: adding the same constant to every
// entry does not change the distribution it represents, so normalization is
// an explicit, idempotent step (Renormalize) rather than an invariant.
// -Inf is a valid entry and means "impossible"; +Inf never is.
//
// Tensor reductions (LogSumExp, LogSumExpKeepDim, LogContract,
// NormalizeLogProbas) operate on *tensor.Dense and all funnel into
// LogSumExpVec, which returns -Inf (never NaN) for an all-impossible lane.
//
// LogContract is the workhorse: in log-space it computes
//
//	Σ_x table(..., x, ...) · message(x)
//
// i.e. the marginalization of a conditional table against an incoming message.
package logspace
