package blend_test

import (
	"testing"

	"github.com/katalvlaran/blendspace/algebra"
	"github.com/katalvlaran/blendspace/blend"
	"github.com/katalvlaran/blendspace/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStepwiseConstructionMatchesBuild exercises NewMutator + SetNeutral
// + AddDelta directly and checks it reproduces what Build would have
// done for the same population/snap system with a punched off-axis
// master.
func TestStepwiseConstructionMatchesBuild(t *testing.T) {
	bias := location.Origin()
	m := blend.NewMutator()
	require.NoError(t, m.SetNeutral(bias, algebra.Scalar(0)))

	require.NoError(t, m.AddDelta(location.Axis("pop", 1), algebra.Scalar(100), false))
	require.NoError(t, m.AddDelta(location.Axis("snap", 1), algebra.Scalar(-100), false))
	require.NoError(t, m.AddDelta(
		location.New(map[string]float64{"pop": 1, "snap": 1}),
		algebra.Scalar(50),
		true,
	))

	scalarAt := func(loc location.Location) float64 {
		t.Helper()
		v, err := m.MakeInstance(blend.Single(loc))
		require.NoError(t, err)
		return float64(v.(algebra.Scalar))
	}

	assert.Equal(t, 0.0, scalarAt(location.New(map[string]float64{"pop": 0, "snap": 0})))
	assert.Equal(t, 50.0, scalarAt(location.New(map[string]float64{"pop": 1, "snap": 1})))
	assert.Equal(t, 200.0, scalarAt(location.New(map[string]float64{"pop": 2, "snap": 2})))
	assert.Equal(t, 100.0, scalarAt(location.New(map[string]float64{"pop": 1, "snap": 0})))
}

func TestAxisNamesIncludesOffAxisOnlyAxes(t *testing.T) {
	m := blend.NewMutator()
	require.NoError(t, m.SetNeutral(location.Origin(), algebra.Scalar(0)))
	require.NoError(t, m.AddDelta(
		location.New(map[string]float64{"pop": 1, "snap": 1}),
		algebra.Scalar(50),
		false,
	))
	// Neither axis has an on-axis master, but both are part of the
	// design space and must be reported.
	assert.Equal(t, []string{"pop", "snap"}, m.AxisNames())
}

func TestSetNeutralRejectsDoubleCall(t *testing.T) {
	m := blend.NewMutator()
	require.NoError(t, m.SetNeutral(location.Origin(), algebra.Scalar(0)))
	err := m.SetNeutral(location.Origin(), algebra.Scalar(1))
	assert.ErrorIs(t, err, blend.ErrNeutralAlreadySet)
}

func TestAddDeltaRejectsUninitialisedNeutral(t *testing.T) {
	m := blend.NewMutator()
	err := m.AddDelta(location.Axis("pop", 1), algebra.Scalar(1), false)
	assert.ErrorIs(t, err, blend.ErrUninitialisedNeutral)
}
