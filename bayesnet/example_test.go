package bayesnet_test

import (
	"fmt"

	"github.com/katalvlaran/loopybayes/bayesnet"
	"github.com/katalvlaran/loopybayes/tensor"
)

// ExampleNetwork infers the parent of a two-node chain from its child.
func ExampleNetwork() {
	prior, _ := tensor.Vector(0.5, 0.5)
	// rows: B=0, B=1; columns: A=0, A=1
	cpt, _ := tensor.FromSlice([]int{2, 2}, []float64{
		0.5, 1.0,
		0.5, 0.0,
	})

	net := bayesnet.New()
	a := net.MustAddNode(nil, prior)
	b := net.MustAddNode([]bayesnet.NodeID{a}, cpt)

	for _, value := range []int{0, 1} {
		_ = net.SetEvidence(bayesnet.Evidence{Node: b, Value: value})
		net.ResetState()
		_ = net.Run(10)
		p := net.Probabilities()
		fmt.Printf("B=%d: A=[%.3f %.3f]\n", value, p[a][0], p[a][1])
	}

	// Output:
	// B=0: A=[0.333 0.667]
	// B=1: A=[1.000 0.000]
}

// ExampleNetwork_Beliefs reads beliefs as log-odds.
func ExampleNetwork_Beliefs() {
	net := bayesnet.New()
	prior, _ := tensor.Vector(1, 3)
	net.MustAddNode(nil, prior)

	net.ResetState()
	net.Step()
	b := net.Beliefs()[0]
	fmt.Println(b)
	fmt.Printf("log3 odds: %.2f\n", b.LogOdds(1, 0, 3))

	// Output:
	// [0.25 0.75]
	// log3 odds: 1.00
}
