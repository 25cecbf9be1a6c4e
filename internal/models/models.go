// Package models holds the example networks bundled with the lbp command.
//
// Every Model carries the Network plus the names of its variables and of
// their values, so evidence and reports can use names instead of indices.
package models

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/loopybayes/bayesnet"
	"github.com/katalvlaran/loopybayes/tensor"
)

var (
	// ErrUnknownModel indicates a model name that is not registered.
	ErrUnknownModel = errors.New("models: unknown model")

	// ErrUnknownVariable indicates an evidence name that is not a variable of the model.
	ErrUnknownVariable = errors.New("models: unknown variable")

	// ErrUnknownValue indicates an evidence value that is neither a value name nor an integer.
	ErrUnknownValue = errors.New("models: unknown value")
)

// Variable names a node and its values.
type Variable struct {
	Name   string
	Values []string
	ID     bayesnet.NodeID
}

// Model is a built network with named variables, in NodeID order.
type Model struct {
	Name        string
	Description string
	Net         *bayesnet.Network
	Variables   []Variable

	// DefaultSteps is the number of sweeps the example needs to settle.
	DefaultSteps int
	// DefaultEvidence is applied when the caller gives none.
	DefaultEvidence map[string]string
}

// Builder constructs a fresh Model with the given network options.
type Builder func(opts ...bayesnet.Option) *Model

var registry = map[string]Builder{
	"sprinkler": Sprinkler,
	"flatearth": FlatEarth,
}

// Names returns the registered model names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Build constructs the named model.
func Build(name string, opts ...bayesnet.Option) (*Model, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownModel)
	}

	return b(opts...), nil
}

// Evidence resolves name → value pairs into network evidence. A value is
// either one of the variable's value names or a decimal index; indices are
// not range checked, matching bayesnet.Network.SetEvidence.
func (m *Model) Evidence(named map[string]string) ([]bayesnet.Evidence, error) {
	keys := make([]string, 0, len(named))
	for k := range named {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic evidence order

	out := make([]bayesnet.Evidence, 0, len(named))
	for _, name := range keys {
		v, err := m.lookup(name)
		if err != nil {
			return nil, err
		}
		idx, err := v.valueIndex(named[name])
		if err != nil {
			return nil, err
		}
		out = append(out, bayesnet.Evidence{Node: v.ID, Value: idx})
	}

	return out, nil
}

func (m *Model) lookup(name string) (*Variable, error) {
	for i := range m.Variables {
		if m.Variables[i].Name == name {
			return &m.Variables[i], nil
		}
	}

	return nil, fmt.Errorf("%q in model %s: %w", name, m.Name, ErrUnknownVariable)
}

func (v *Variable) valueIndex(value string) (int, error) {
	for i, name := range v.Values {
		if name == value {
			return i, nil
		}
	}
	idx, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q for %s: %w", value, v.Name, ErrUnknownValue)
	}

	return idx, nil
}

// add registers a node and its names on m.
func (m *Model) add(name string, values []string, id bayesnet.NodeID) bayesnet.NodeID {
	m.Variables = append(m.Variables, Variable{Name: name, Values: values, ID: id})

	return id
}

// table builds a tensor from literal data; shapes are static so failure panics.
func table(shape []int, data ...float64) *tensor.Dense {
	t, err := tensor.FromSlice(shape, data)
	if err != nil {
		panic(err)
	}

	return t
}

// log10Table builds a natural-log table from base-10 log-odds literals.
func log10Table(shape []int, data ...float64) *tensor.Dense {
	return table(shape, data...).Scale(math.Ln10)
}

// Infer resolves named evidence, restarts inference and runs steps sweeps.
func (m *Model) Infer(named map[string]string, steps int) error {
	ev, err := m.Evidence(named)
	if err != nil {
		return err
	}
	if err = m.Net.SetEvidence(ev...); err != nil {
		return err
	}
	m.Net.ResetState()

	return m.Net.Run(steps)
}
