package models

import "github.com/katalvlaran/loopybayes/bayesnet"

// FlatEarth weighs everyday evidence about the shape of the Earth.
//
// Tables are written as base-10 log-odds: within a column only differences
// matter, so the first row is 0 and the second row is
// log10 P(yes | parents) / P(no | parents). Roughly, ±5 is "extremely
// confident", ±3 "fairly sure", ±1 "slightly", 0 "undecided".
func FlatEarth(opts ...bayesnet.Option) *Model {
	m := &Model{
		Name:         "flatearth",
		Description:  "is the Earth flat? (base-10 log-odds)",
		Net:          bayesnet.New(opts...),
		DefaultSteps: 20,
		DefaultEvidence: map[string]string{
			"looks_flat": "yes",
			"horizon":    "yes",
			"photos":     "yes",
			"leak":       "no",
		},
	}
	net := m.Net
	round := []string{"round", "flat"}

	// no reason to prefer either shape a priori
	flat := m.add("flat", round, net.MustAddNodeFromLogProbabilities(nil, log10Table([]int{2}, 0, 0)))

	// a cover-up has no reason to exist for a round Earth (-5), and is
	// unlikely but conceivable for a flat one (-2)
	conspiracy := m.add("conspiracy", noYes, net.MustAddNodeFromLogProbabilities(
		[]bayesnet.NodeID{flat},
		log10Table([]int{2, 2},
			0, 0,
			-5, -2,
		)))

	// a very large round Earth still looks flat from the ground (3);
	// a flat one obviously does (5)
	m.add("looks_flat", noYes, net.MustAddNodeFromLogProbabilities(
		[]bayesnet.NodeID{flat},
		log10Table([]int{2, 2},
			0, 0,
			3, 5,
		)))

	// the horizon is geometry on a round Earth (5), unexplained on a flat one (0)
	m.add("horizon", noYes, net.MustAddNodeFromLogProbabilities(
		[]bayesnet.NodeID{flat},
		log10Table([]int{2, 2},
			0, 0,
			5, 0,
		)))

	// photos from space look round: expected if round (4), surprising if flat
	// without a cover-up (-4), the whole point of a cover-up otherwise (5)
	m.add("photos", noYes, net.MustAddNodeFromLogProbabilities(
		[]bayesnet.NodeID{flat, conspiracy},
		log10Table([]int{2, 2, 2},
			0, 0, 0, 0,
			4, 4, -4, 5,
		)))

	// large conspiracies leak: unlikely leak without one (-4), likely with one (3)
	m.add("leak", noYes, net.MustAddNodeFromLogProbabilities(
		[]bayesnet.NodeID{conspiracy},
		log10Table([]int{2, 2},
			0, 0,
			-4, 3,
		)))

	return m
}
