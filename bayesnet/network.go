// SPDX-License-Identifier: MIT

// Package bayesnet: Network construction, evidence, and introspection.

package bayesnet

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/katalvlaran/loopybayes/logspace"
	"github.com/katalvlaran/loopybayes/tensor"
)

// Network is a discrete Bayesian network with Loopy Belief Propagation state.
//
// Nodes are added one by one, parents before children, then the network is
// used for inference: SetEvidence, ResetState, Step as many times as wanted,
// Beliefs. The topology is fixed once inference starts.
//
// mu guards every field; Beliefs and the accessors take the read lock,
// everything that mutates takes the write lock.
type Network struct {
	mu sync.RWMutex

	nodes []*node
	steps int // sweeps since the last ResetState

	workers int
	logger  *slog.Logger
	metrics *metrics
}

// New creates an empty Network.
// Complexity: O(1).
func New(opts ...Option) *Network {
	o := gatherOptions(opts...)

	return &Network{
		workers: o.workers,
		logger:  o.logger,
		metrics: newMetrics(o.registerer),
	}
}

// AddNode adds a node defined by raw probabilities P(x | parents).
//
// If the parents are (p1, ..., pk), probabilities must have shape
// (N, N_p1, ..., N_pk) where N is the number of values of the new variable
// and N_pi the number of values of parent pi. A node without parents takes a
// rank-1 prior. Entries must be finite and non-negative; they need not be
// normalized, each slice along axis 0 is normalized here. The caller's
// tensor is not retained.
func (net *Network) AddNode(parents []NodeID, probabilities *tensor.Dense) (NodeID, error) {
	if probabilities == nil {
		return 0, netErrorf("AddNode", ErrNilTable)
	}
	for _, p := range probabilities.Data() {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, netErrorf("AddNode", ErrInvalidProbability)
		}
	}

	return net.addNode("AddNode", parents, probabilities.Apply(math.Log))
}

// AddNodeFromLogProbabilities is AddNode with natural-log probabilities, for
// greater precision. -Inf is valid and means probability 0; NaN and +Inf are
// rejected. For example the log-vector [0, -Inf] is the distribution [1, 0].
func (net *Network) AddNodeFromLogProbabilities(parents []NodeID, logProbabilities *tensor.Dense) (NodeID, error) {
	if logProbabilities == nil {
		return 0, netErrorf("AddNodeFromLogProbabilities", ErrNilTable)
	}
	for _, lp := range logProbabilities.Data() {
		if math.IsNaN(lp) || math.IsInf(lp, 1) {
			return 0, netErrorf("AddNodeFromLogProbabilities", ErrInvalidProbability)
		}
	}

	return net.addNode("AddNodeFromLogProbabilities", parents, logProbabilities.Clone())
}

// MustAddNode is AddNode for statically known networks: a shape or parent
// mismatch is a programming error and panics.
func (net *Network) MustAddNode(parents []NodeID, probabilities *tensor.Dense) NodeID {
	id, err := net.AddNode(parents, probabilities)
	if err != nil {
		panic(err)
	}

	return id
}

// MustAddNodeFromLogProbabilities is the panicking form of AddNodeFromLogProbabilities.
func (net *Network) MustAddNodeFromLogProbabilities(parents []NodeID, logProbabilities *tensor.Dense) NodeID {
	id, err := net.AddNodeFromLogProbabilities(parents, logProbabilities)
	if err != nil {
		panic(err)
	}

	return id
}

// addNode validates and appends a node owning table.
// Stage 1 (Validate): rank, parent existence/uniqueness, per-axis cardinality.
// Stage 2 (Link): a uniform lambda slot on every parent, a uniform pi slot per parent.
// Stage 3 (Finalize): normalize the table along axis 0 and append.
func (net *Network) addNode(tag string, parents []NodeID, table *tensor.Dense) (NodeID, error) {
	net.mu.Lock()
	defer net.mu.Unlock()

	if table.Rank() != len(parents)+1 {
		return 0, netErrorf(tag, fmt.Errorf("rank %d for %d parents: %w", table.Rank(), len(parents), ErrRankMismatch))
	}
	seen := make(map[NodeID]struct{}, len(parents))
	for i, p := range parents {
		if p < 0 || int(p) >= len(net.nodes) {
			return 0, netErrorf(tag, fmt.Errorf("parent %d: %w", p, ErrUnknownNode))
		}
		if _, dup := seen[p]; dup {
			return 0, netErrorf(tag, fmt.Errorf("parent %d: %w", p, ErrDuplicateParent))
		}
		seen[p] = struct{}{}
		if want, got := net.nodes[p].card, table.Dim(i+1); want != got {
			return 0, netErrorf(tag, fmt.Errorf("dimension %d is %d but parent %d has %d values: %w",
				i+1, got, p, want, ErrShapeMismatch))
		}
	}

	if err := logspace.NormalizeLogProbas(table); err != nil {
		return 0, netErrorf(tag, err)
	}

	id := NodeID(len(net.nodes))
	n := &node{
		parents: make([]edge, len(parents)),
		table:   table,
		card:    table.Dim(0),
	}
	for i, p := range parents {
		pc := net.nodes[p].card
		n.parents[i] = edge{peer: p, msg: logspace.Uniform(pc)}
		net.nodes[p].children = append(net.nodes[p].children, edge{peer: id, msg: logspace.Uniform(pc)})
		net.nodes[p].invalidate() // lambda now depends on one more child
	}
	net.nodes = append(net.nodes, n)

	net.metrics.nodes.Set(float64(len(net.nodes)))
	net.logger.Debug("node added", "id", int(id), "values", n.card, "parents", len(parents))

	return id, nil
}

// SetEvidence replaces the whole evidence set: every observation is cleared,
// then each given (node, value) pair is applied. Values are not range
// checked; an out-of-range value yields an impossible-everywhere belief for
// that node. Unknown nodes are rejected before anything changes.
func (net *Network) SetEvidence(evidence ...Evidence) error {
	net.mu.Lock()
	defer net.mu.Unlock()

	for _, ev := range evidence {
		if ev.Node < 0 || int(ev.Node) >= len(net.nodes) {
			return netErrorf("SetEvidence", fmt.Errorf("node %d: %w", ev.Node, ErrUnknownNode))
		}
	}
	for _, n := range net.nodes {
		n.observed, n.value = false, 0
	}
	for _, ev := range evidence {
		n := net.nodes[ev.Node]
		n.observed, n.value = true, ev.Value
	}
	net.logger.Debug("evidence set", "observations", len(evidence))

	return nil
}

// ResetState restarts inference: every message goes back to uniform and
// every cached aggregate is marked stale.
// Complexity: O(V + E).
func (net *Network) ResetState() {
	net.mu.Lock()
	defer net.mu.Unlock()

	for _, n := range net.nodes {
		for _, e := range n.parents {
			e.msg.Reset()
		}
		for _, e := range n.children {
			e.msg.Reset()
		}
		n.invalidate()
	}
	net.steps = 0
}

// Len returns the number of nodes.
func (net *Network) Len() int {
	net.mu.RLock()
	defer net.mu.RUnlock()

	return len(net.nodes)
}

// Steps returns the number of sweeps run since the last ResetState.
func (net *Network) Steps() int {
	net.mu.RLock()
	defer net.mu.RUnlock()

	return net.steps
}

// Cardinality returns the number of values of node id.
func (net *Network) Cardinality(id NodeID) (int, error) {
	net.mu.RLock()
	defer net.mu.RUnlock()

	n, err := net.lookup("Cardinality", id)
	if err != nil {
		return 0, err
	}

	return n.card, nil
}

// Parents returns the parents of id in table-axis order.
func (net *Network) Parents(id NodeID) ([]NodeID, error) {
	net.mu.RLock()
	defer net.mu.RUnlock()

	n, err := net.lookup("Parents", id)
	if err != nil {
		return nil, err
	}

	return peers(n.parents), nil
}

// Children returns the children of id in creation order.
func (net *Network) Children(id NodeID) ([]NodeID, error) {
	net.mu.RLock()
	defer net.mu.RUnlock()

	n, err := net.lookup("Children", id)
	if err != nil {
		return nil, err
	}

	return peers(n.children), nil
}

func (net *Network) lookup(tag string, id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(net.nodes) {
		return nil, netErrorf(tag, fmt.Errorf("node %d: %w", id, ErrUnknownNode))
	}

	return net.nodes[id], nil
}

func peers(edges []edge) []NodeID {
	out := make([]NodeID, len(edges))
	for i, e := range edges {
		out[i] = e.peer
	}

	return out
}
