package models

import "github.com/katalvlaran/loopybayes/bayesnet"

var noYes = []string{"no", "yes"}

// Sprinkler is the classic network
//
//	+----------+          +----------------------+
//	| It rains | -------> | Sprinkler is running |
//	+----------+          +----------------------+
//	      |                 |
//	      +----+     +------+
//	           v     v
//	       +--------------+
//	       | Grass is wet |
//	       +--------------+
//
// The rain → wet and rain → sprinkler → wet paths form a loop, so the
// beliefs are approximate once the grass is observed.
func Sprinkler(opts ...bayesnet.Option) *Model {
	m := &Model{
		Name:            "sprinkler",
		Description:     "rain / sprinkler / wet grass",
		Net:             bayesnet.New(opts...),
		DefaultSteps:    50,
		DefaultEvidence: map[string]string{"wet": "yes"},
	}

	// P(rain)
	rain := m.add("rain", noYes, m.Net.MustAddNode(nil, table([]int{2}, 0.8, 0.2)))

	// P(sprinkler | rain); columns are rain = no, yes
	sprinkler := m.add("sprinkler", noYes, m.Net.MustAddNode(
		[]bayesnet.NodeID{rain},
		table([]int{2, 2},
			0.60, 0.99,
			0.40, 0.01,
		)))

	// P(wet | rain, sprinkler); innermost axis is sprinkler
	m.add("wet", noYes, m.Net.MustAddNode(
		[]bayesnet.NodeID{rain, sprinkler},
		table([]int{2, 2, 2},
			1.0, 0.1, 0.2, 0.01, // not wet
			0.0, 0.9, 0.8, 0.99, // wet
		)))

	return m
}
