// SPDX-License-Identifier: MIT
// Package bayesnet_test contains shared fixtures for the bayesnet tests.

package bayesnet_test

import (
	"testing"

	"github.com/katalvlaran/loopybayes/bayesnet"
	"github.com/katalvlaran/loopybayes/tensor"
	"github.com/stretchr/testify/require"
)

// tol is the tolerance used against hand-computed beliefs.
const tol = 1e-3

// mustTensor builds a tensor or fails the test.
func mustTensor(t testing.TB, shape []int, data ...float64) *tensor.Dense {
	t.Helper()
	d, err := tensor.FromSlice(shape, data)
	require.NoError(t, err)
	return d
}

// ids is a shorthand for a parent list.
func ids(v ...bayesnet.NodeID) []bayesnet.NodeID { return v }

// twoNodes builds A → B with
//
//	P(A)         = [0.5, 0.5]
//	P(B=0 | A)   = [0.5, 1.0]
//	P(B=1 | A)   = [0.5, 0.0]
func twoNodes(t testing.TB, opts ...bayesnet.Option) (*bayesnet.Network, bayesnet.NodeID, bayesnet.NodeID) {
	t.Helper()
	net := bayesnet.New(opts...)
	a, err := net.AddNode(nil, mustTensor(t, []int{2}, 0.5, 0.5))
	require.NoError(t, err)
	b, err := net.AddNode(ids(a), mustTensor(t, []int{2, 2}, 0.5, 1.0, 0.5, 0.0))
	require.NoError(t, err)
	return net, a, b
}

// multiValued builds a three-node network with a loop through node 0:
// n0 (3 values) → n1 (2 values), and n0, n1 → n2 (4 values).
func multiValued(t testing.TB, opts ...bayesnet.Option) *bayesnet.Network {
	t.Helper()
	net := bayesnet.New(opts...)
	n0 := net.MustAddNode(nil, mustTensor(t, []int{3}, 0.5, 0.4, 0.1))
	n1 := net.MustAddNode(ids(n0), mustTensor(t, []int{2, 3},
		0.8, 0.2, 1.0,
		0.2, 0.8, 0.0,
	))
	net.MustAddNode(ids(n0, n1), mustTensor(t, []int{4, 3, 2},
		0, 0, 1, 0, 0, 0,
		1, 0, 0, 1, 0, 0,
		0, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 1,
	))
	return net
}

// sprinkler builds the classic rain / sprinkler / wet grass network.
func sprinkler(t testing.TB, opts ...bayesnet.Option) (net *bayesnet.Network, rain, sprk, wet bayesnet.NodeID) {
	t.Helper()
	net = bayesnet.New(opts...)
	rain = net.MustAddNode(nil, mustTensor(t, []int{2}, 0.8, 0.2))
	sprk = net.MustAddNode(ids(rain), mustTensor(t, []int{2, 2},
		0.60, 0.99,
		0.40, 0.01,
	))
	wet = net.MustAddNode(ids(rain, sprk), mustTensor(t, []int{2, 2, 2},
		1.0, 0.1, 0.2, 0.01,
		0.0, 0.9, 0.8, 0.99,
	))
	return net, rain, sprk, wet
}

// runFresh resets the network, applies evidence and runs steps sweeps.
func runFresh(t testing.TB, net *bayesnet.Network, steps int, ev ...bayesnet.Evidence) [][]float64 {
	t.Helper()
	net.ResetState()
	require.NoError(t, net.SetEvidence(ev...))
	require.NoError(t, net.Run(steps))
	return net.Probabilities()
}
