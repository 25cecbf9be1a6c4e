// Package loopybayes approximates marginal distributions of discrete
// Bayesian networks with Loopy Belief Propagation, computed in log-space.
//
// The module is organized as:
//
//	tensor/          dense row-major float64 tensors with axis reductions
//	logspace/        log-probability vectors and log-sum-exp contractions
//	bayesnet/        the Network: nodes, evidence, synchronous LBP sweeps
//	internal/models  bundled example networks (sprinkler, flat earth)
//	internal/cli     the lbp command
//	cmd/lbp          entry point
//
// Quick example (rain ─▶ wet grass):
//
//	prior, _ := tensor.Vector(0.8, 0.2)
//	net := bayesnet.New()
//	rain := net.MustAddNode(nil, prior)
//	wet := net.MustAddNode([]bayesnet.NodeID{rain}, table) // shape (2, 2)
//	_ = net.SetEvidence(bayesnet.Evidence{Node: wet, Value: 1})
//	_ = net.Run(10)
//	fmt.Println(net.Beliefs()[rain])
//
// Every message is a log-probability vector; products become sums and sums
// become log-sum-exp, so very small probabilities do not underflow.
package loopybayes
