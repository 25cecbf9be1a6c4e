package models_test

import (
	"testing"

	"github.com/katalvlaran/loopybayes/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{"flatearth", "sprinkler"}, models.Names())

	_, err := models.Build("nope")
	require.ErrorIs(t, err, models.ErrUnknownModel)
}

func TestEvidenceResolution(t *testing.T) {
	m := models.Sprinkler()

	ev, err := m.Evidence(map[string]string{"wet": "yes", "rain": "0"})
	require.NoError(t, err)
	require.Len(t, ev, 2)
	// sorted by variable name: rain, wet
	require.Equal(t, 0, ev[0].Value)
	require.Equal(t, m.Variables[0].ID, ev[0].Node)
	require.Equal(t, 1, ev[1].Value)
	require.Equal(t, m.Variables[2].ID, ev[1].Node)

	// indices are passed through unchecked
	ev, err = m.Evidence(map[string]string{"wet": "5"})
	require.NoError(t, err)
	require.Equal(t, 5, ev[0].Value)

	_, err = m.Evidence(map[string]string{"snow": "yes"})
	require.ErrorIs(t, err, models.ErrUnknownVariable)

	_, err = m.Evidence(map[string]string{"wet": "soaked"})
	require.ErrorIs(t, err, models.ErrUnknownValue)
}

func TestSprinklerWetGrass(t *testing.T) {
	m := models.Sprinkler()
	require.NoError(t, m.Infer(m.DefaultEvidence, m.DefaultSteps))

	p := m.Net.Probabilities()
	require.InDeltaSlice(t, []float64{0.9369, 0.0631}, p[0], 1e-3)
	require.InDeltaSlice(t, []float64{0.0496, 0.9504}, p[1], 1e-3)
	require.InDeltaSlice(t, []float64{0, 1}, p[2], 1e-3)
}

func TestFlatEarthVerdict(t *testing.T) {
	m, err := models.Build("flatearth")
	require.NoError(t, err)
	require.Len(t, m.Variables, 6)
	require.NoError(t, m.Infer(m.DefaultEvidence, m.DefaultSteps))

	beliefs := m.Net.Beliefs()
	require.InDelta(t, -4.305, beliefs[0].LogOdds(1, 0, 10), 1e-2) // flat
	require.InDelta(t, -7.805, beliefs[1].LogOdds(1, 0, 10), 1e-2) // conspiracy
}
