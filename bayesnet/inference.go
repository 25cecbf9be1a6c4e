// SPDX-License-Identifier: MIT

// Package bayesnet: the synchronous Loopy Belief Propagation sweep.
//
// Step runs in two passes over the node arena:
//
//  1. compute: every node reads only the messages stored at itself and
//     stages the messages it sends; nothing in the arena is written except
//     the node's own caches.
//  2. commit: after every node is done (a barrier when workers > 1), staged
//     messages replace the slots at their receivers.
//
// Writing in place during pass 1 would let a node read a message that was
// already updated in the same sweep; the staging buffer keeps the update
// parallel rather than sequential.

package bayesnet

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/loopybayes/logspace"
)

// message is a staged message keyed by (from, to).
type message struct {
	from, to NodeID
	msg      *logspace.Vector
}

// outbox holds everything one node sends during a sweep.
type outbox struct {
	pi     []message // to children
	lambda []message // to parents
}

// Step runs one synchronous LBP sweep over every node.
//
// There is no convergence test: call Step as many times as wanted and stop
// when satisfied, e.g. when Beliefs stop changing significantly.
// Complexity: O(Σ_nodes |table| · (|parents| + 1) + Σ_nodes |children|²·N).
func (net *Network) Step() {
	net.mu.Lock()
	defer net.mu.Unlock()

	start := time.Now()
	boxes := make([]outbox, len(net.nodes))

	if err := net.computeAll(boxes); err != nil {
		// unreachable while construction invariants hold
		panic(fmt.Sprintf("bayesnet: step: %v", err))
	}

	var nPi, nLambda int
	for _, box := range boxes {
		for _, m := range box.pi {
			net.commitPi(m)
		}
		for _, m := range box.lambda {
			net.commitLambda(m)
		}
		nPi += len(box.pi)
		nLambda += len(box.lambda)
	}
	net.steps++

	elapsed := time.Since(start)
	net.metrics.steps.Inc()
	net.metrics.messages.WithLabelValues(kindPi).Add(float64(nPi))
	net.metrics.messages.WithLabelValues(kindLambda).Add(float64(nLambda))
	net.metrics.stepDuration.Observe(elapsed.Seconds())
	net.logger.Debug("step",
		"step", net.steps,
		"pi_messages", nPi,
		"lambda_messages", nLambda,
		"duration", elapsed,
	)
}

// Run calls Step steps times.
func (net *Network) Run(steps int) error {
	if steps < 0 {
		return netErrorf("Run", ErrNegativeSteps)
	}
	for i := 0; i < steps; i++ {
		net.Step()
	}

	return nil
}

// computeAll fills boxes[i] with node i's outgoing messages, on up to
// net.workers goroutines. Wait is the barrier before commit.
func (net *Network) computeAll(boxes []outbox) error {
	if net.workers <= 1 {
		for i, n := range net.nodes {
			if err := n.outgoing(NodeID(i), &boxes[i]); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(net.workers)
	for i, n := range net.nodes {
		g.Go(func() error {
			return n.outgoing(NodeID(i), &boxes[i])
		})
	}

	return g.Wait()
}

// outgoing computes every message node id sends this sweep, then marks its
// aggregates stale since they describe the messages about to be replaced.
func (n *node) outgoing(id NodeID, box *outbox) error {
	pi, err := n.getOrComputePi()
	if err != nil {
		return fmt.Errorf("node %d: %w", id, err)
	}
	piEv := pi.Clone()
	if err = piEv.Prod(n.evidenceVec()); err != nil {
		return fmt.Errorf("node %d: %w", id, err)
	}
	box.pi = make([]message, 0, len(n.children))
	for _, c := range n.children {
		msg, err := n.piMessage(piEv, c.peer)
		if err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
		box.pi = append(box.pi, message{from: id, to: c.peer, msg: msg})
	}

	lambda, err := n.getOrComputeLambda()
	if err != nil {
		return fmt.Errorf("node %d: %w", id, err)
	}
	box.lambda = make([]message, 0, len(n.parents))
	for k, p := range n.parents {
		msg, err := n.lambdaMessage(lambda, k)
		if err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
		box.lambda = append(box.lambda, message{from: id, to: p.peer, msg: msg})
	}

	n.invalidate()

	return nil
}

// commitPi stores a pi message at the child, which must list the sender as
// a parent.
func (net *Network) commitPi(m message) {
	to := net.nodes[m.to]
	for i := range to.parents {
		if to.parents[i].peer == m.from {
			to.parents[i].msg = m.msg
			return
		}
	}
	panic(fmt.Sprintf("bayesnet: message from %d to %d, which does not list it as a parent", m.from, m.to))
}

// commitLambda stores a lambda message at the parent, which must list the
// sender as a child.
func (net *Network) commitLambda(m message) {
	to := net.nodes[m.to]
	for i := range to.children {
		if to.children[i].peer == m.from {
			to.children[i].msg = m.msg
			return
		}
	}
	panic(fmt.Sprintf("bayesnet: message from %d to %d, which does not list it as a child", m.from, m.to))
}

// Beliefs returns, for every node in NodeID order, lambda·pi renormalized:
// the current approximation of the node's marginal given the evidence.
// Beliefs does not modify the network.
func (net *Network) Beliefs() []*logspace.Vector {
	net.mu.RLock()
	defer net.mu.RUnlock()

	out := make([]*logspace.Vector, len(net.nodes))
	for i, n := range net.nodes {
		b, err := n.belief()
		if err != nil {
			panic(fmt.Sprintf("bayesnet: belief of node %d: %v", i, err))
		}
		out[i] = b
	}

	return out
}

// Probabilities is Beliefs mapped to normalized probabilities. A node whose
// evidence is impossible gets an all-zero row.
func (net *Network) Probabilities() [][]float64 {
	beliefs := net.Beliefs()
	out := make([][]float64, len(beliefs))
	for i, b := range beliefs {
		out[i] = b.Probabilities()
	}

	return out
}
