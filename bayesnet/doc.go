// Package bayesnet implements approximate inference on discrete Bayesian
// networks with Loopy Belief Propagation (LBP) in log-space.
//
// A Network is built bottom-up: every node is added with the list of its
// parents (which must already exist) and a conditional probability table
// P(x | parents) of shape (N, N_p1, ..., N_pk). Node IDs are dense integers
// in creation order, so no cycle of parent links can be expressed.
//
// Inference is driven by the caller:
//
//	net := bayesnet.New()
//	a := net.MustAddNode(nil, prior)
//	b := net.MustAddNode([]bayesnet.NodeID{a}, cpt)
//	_ = net.SetEvidence(bayesnet.Evidence{Node: b, Value: 1})
//	net.ResetState()
//	for i := 0; i < 10; i++ {
//		net.Step()
//	}
//	beliefs := net.Beliefs() // one *logspace.Vector per node
//
// Each Step is one synchronous sweep: every node computes its outgoing pi
// messages (to children) and lambda messages (to parents) from the messages
// of the previous sweep, and only then are all messages replaced. There is
// no convergence detection; the number of sweeps is the caller's choice.
//
// On trees LBP converges to the exact marginals. On networks with loops
// (in the undirected sense) it converges to an approximation, or not at all.
//
// Evidence is permissive: a value outside a node's range is accepted and
// simply makes that node impossible, which shows up as an all-zero row in
// Probabilities. Contradictory evidence surfaces the same way.
package bayesnet
