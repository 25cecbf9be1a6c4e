// SPDX-License-Identifier: MIT

// Package bayesnet: sentinel error set.
// Construction-time contract violations are returned as these sentinels
// (wrapped with call-site context); match them with errors.Is. The Must*
// constructors turn them into panics for statically built networks.
// Data anomalies such as out-of-range evidence are never errors.

package bayesnet

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable indicates AddNode was called without a probability table.
	ErrNilTable = errors.New("bayesnet: nil probability table")

	// ErrRankMismatch indicates the table rank is not 1 + number of parents.
	ErrRankMismatch = errors.New("bayesnet: table rank does not match number of parents")

	// ErrShapeMismatch indicates a table axis does not match the cardinality
	// of the parent it belongs to.
	ErrShapeMismatch = errors.New("bayesnet: table dimension does not match parent cardinality")

	// ErrUnknownNode indicates a node identifier that is not part of the network.
	ErrUnknownNode = errors.New("bayesnet: unknown node")

	// ErrDuplicateParent indicates the same parent was listed twice for one node.
	ErrDuplicateParent = errors.New("bayesnet: duplicate parent")

	// ErrInvalidProbability indicates a NaN or +Inf log-probability (or a
	// negative / non-finite raw probability).
	ErrInvalidProbability = errors.New("bayesnet: invalid probability value")

	// ErrNegativeSteps indicates Run was asked for a negative number of steps.
	ErrNegativeSteps = errors.New("bayesnet: negative step count")
)

// netErrorf tags a sentinel with the operation that produced it.
func netErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
