package bayesnet_test

import (
	"testing"

	"github.com/katalvlaran/loopybayes/bayesnet"
)

// chainNet builds a binary chain of length n with a noisy copy CPT.
func chainNet(b *testing.B, n int, opts ...bayesnet.Option) *bayesnet.Network {
	b.Helper()
	net := bayesnet.New(opts...)
	prev := net.MustAddNode(nil, mustTensor(b, []int{2}, 0.3, 0.7))
	for i := 1; i < n; i++ {
		prev = net.MustAddNode(ids(prev), mustTensor(b, []int{2, 2}, 0.9, 0.1, 0.1, 0.9))
	}
	return net
}

func benchmarkStep(b *testing.B, opts ...bayesnet.Option) {
	net := chainNet(b, 256, opts...)
	_ = net.SetEvidence(bayesnet.Evidence{Node: 255, Value: 0})
	net.ResetState()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		net.Step()
	}
}

func BenchmarkStepSerial(b *testing.B)   { benchmarkStep(b) }
func BenchmarkStepParallel(b *testing.B) { benchmarkStep(b, bayesnet.WithWorkers(4)) }

func BenchmarkBeliefs(b *testing.B) {
	net, _, _, _ := sprinkler(b)
	net.ResetState()
	_ = net.Run(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = net.Beliefs()
	}
}
