// SPDX-License-Identifier: MIT

// Package bayesnet: node arena types.
//
// Nodes live in a slice indexed by NodeID. Adjacency is stored as index
// lists on both ends of every edge, and each message is stored exactly once,
// at its receiver:
//
//	parent p ──pi message──▶ child c   stored in c.parents[k].msg
//	parent p ◀─lambda msg─── child c   stored in p.children[k].msg
//
// Both messages on an edge range over the parent's values.

package bayesnet

import (
	"github.com/katalvlaran/loopybayes/logspace"
	"github.com/katalvlaran/loopybayes/tensor"
)

// NodeID identifies a node. IDs are dense and follow creation order, so a
// parent's ID is always smaller than any of its children's.
type NodeID int

// Evidence pins Node to the value index Value. Values outside the node's
// range are accepted and make the node impossible everywhere.
type Evidence struct {
	Node  NodeID
	Value int
}

// edge is one adjacency entry: the neighbour and the message it last sent.
type edge struct {
	peer NodeID
	msg  *logspace.Vector
}

// cacheState tells whether a cache slot holds a value derived from the
// current messages.
type cacheState uint8

const (
	stale cacheState = iota
	cached
)

// cache is a single-slot memo for a per-node aggregate (lambda or pi).
type cache struct {
	state cacheState
	value *logspace.Vector
}

// get returns the cached value, if any. The caller must not mutate it.
func (c *cache) get() (*logspace.Vector, bool) {
	if c.state == cached {
		return c.value, true
	}

	return nil, false
}

func (c *cache) store(v *logspace.Vector) {
	c.state, c.value = cached, v
}

func (c *cache) invalidate() {
	c.state, c.value = stale, nil
}

// node is a discrete random variable.
type node struct {
	parents  []edge        // incoming pi messages, in table-axis order
	children []edge        // incoming lambda messages
	table    *tensor.Dense // log P(x | parents), axis 0 normalized
	card     int           // number of values, == table.Dim(0)

	observed bool
	value    int // meaningful only when observed

	lambda cache
	pi     cache
}
