// SPDX-License-Identifier: MIT

// Package bayesnet: per-node aggregates and outgoing messages.
//
// Everything here reads only the receiving node's own state (its table, its
// evidence, and the messages stored on its adjacency entries). This is what
// lets Step compute all nodes independently before committing.

package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/loopybayes/logspace"
	"github.com/katalvlaran/loopybayes/tensor"
)

// evidenceVec is Deterministic(card, value) when observed, Uniform otherwise.
func (n *node) evidenceVec() *logspace.Vector {
	if n.observed {
		return logspace.Deterministic(n.card, n.value)
	}

	return logspace.Uniform(n.card)
}

// computeLambda multiplies the node's evidence with every lambda message
// received from its children: what is known about the node from its own
// observation and everything downstream.
func (n *node) computeLambda() (*logspace.Vector, error) {
	lambda := n.evidenceVec()
	for _, c := range n.children {
		if err := lambda.Prod(c.msg); err != nil {
			return nil, fmt.Errorf("lambda from child %d: %w", c.peer, err)
		}
	}

	return lambda, nil
}

// computePi contracts the table against every incoming pi message, last
// parent first. Parent k owns table axis k+1; walking parents in reverse
// means that axis is always the last one left when it is contracted.
func (n *node) computePi() (*logspace.Vector, error) {
	acc, err := n.contractParents(-1)
	if err != nil {
		return nil, err
	}
	if acc.Rank() != 1 {
		return nil, fmt.Errorf("pi has rank %d, want 1", acc.Rank())
	}

	return logspace.FromLogProbabilities(acc.Data()), nil
}

// contractParents contracts the table against the pi messages of every
// parent except the one at position skip (-1 skips none), in reverse order.
// The result keeps axis 0 and, when skip >= 0, the skipped parent's axis.
func (n *node) contractParents(skip int) (*tensor.Dense, error) {
	acc := n.table
	for k := len(n.parents) - 1; k >= 0; k-- {
		if k == skip {
			continue
		}
		var err error
		acc, err = logspace.LogContract(acc, n.parents[k].msg.LogProbabilities(), k+1)
		if err != nil {
			return nil, fmt.Errorf("pi from parent %d: %w", n.parents[k].peer, err)
		}
	}

	return acc, nil
}

// getOrComputeLambda returns the memoized lambda, computing it if stale.
func (n *node) getOrComputeLambda() (*logspace.Vector, error) {
	if v, ok := n.lambda.get(); ok {
		return v, nil
	}
	v, err := n.computeLambda()
	if err != nil {
		return nil, err
	}
	n.lambda.store(v)

	return v, nil
}

// getOrComputePi returns the memoized pi, computing it if stale.
func (n *node) getOrComputePi() (*logspace.Vector, error) {
	if v, ok := n.pi.get(); ok {
		return v, nil
	}
	v, err := n.computePi()
	if err != nil {
		return nil, err
	}
	n.pi.store(v)

	return v, nil
}

// lambdaOrCompute and piOrCompute read the memo without filling it.
func (n *node) lambdaOrCompute() (*logspace.Vector, error) {
	if v, ok := n.lambda.get(); ok {
		return v, nil
	}

	return n.computeLambda()
}

func (n *node) piOrCompute() (*logspace.Vector, error) {
	if v, ok := n.pi.get(); ok {
		return v, nil
	}

	return n.computePi()
}

// belief is lambda·pi, renormalized. It does not touch the caches.
func (n *node) belief() (*logspace.Vector, error) {
	lambda, err := n.lambdaOrCompute()
	if err != nil {
		return nil, err
	}
	pi, err := n.piOrCompute()
	if err != nil {
		return nil, err
	}
	b := lambda.Clone()
	if err = b.Prod(pi); err != nil {
		return nil, err
	}
	b.Renormalize()

	return b, nil
}

// piMessage is what the node tells child: pi·evidence times every other
// child's lambda message. The recipient's own message is left out so that
// information does not flow back to its source.
func (n *node) piMessage(piEv *logspace.Vector, child NodeID) (*logspace.Vector, error) {
	msg := piEv.Clone()
	for _, c := range n.children {
		if c.peer == child {
			continue
		}
		if err := msg.Prod(c.msg); err != nil {
			return nil, fmt.Errorf("pi message to %d: %w", child, err)
		}
	}
	msg.Renormalize()

	return msg, nil
}

// lambdaMessage is what the node tells the parent at position k: the table
// contracted against every other parent's pi message, then against the
// node's own lambda along axis 0, leaving a vector over that parent's values.
func (n *node) lambdaMessage(lambda *logspace.Vector, k int) (*logspace.Vector, error) {
	acc, err := n.contractParents(k)
	if err != nil {
		return nil, err
	}
	acc, err = logspace.LogContract(acc, lambda.LogProbabilities(), 0)
	if err != nil {
		return nil, fmt.Errorf("lambda message to %d: %w", n.parents[k].peer, err)
	}
	if acc.Rank() != 1 {
		return nil, fmt.Errorf("lambda message to %d has rank %d, want 1", n.parents[k].peer, acc.Rank())
	}
	msg := logspace.FromLogProbabilities(acc.Data())
	msg.Renormalize()

	return msg, nil
}

// invalidate marks both aggregates stale.
func (n *node) invalidate() {
	n.lambda.invalidate()
	n.pi.invalidate()
}
