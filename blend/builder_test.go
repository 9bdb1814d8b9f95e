package blend_test

import (
	"testing"

	"github.com/katalvlaran/blendspace/algebra"
	"github.com/katalvlaran/blendspace/blend"
	"github.com/katalvlaran/blendspace/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, _, err := blend.Build(nil)
	assert.ErrorIs(t, err, blend.ErrEmptyInput)
}

func TestBuildRejectsNilValue(t *testing.T) {
	_, _, err := blend.Build([]blend.Item{
		{Location: location.Origin(), Value: nil},
	})
	assert.ErrorIs(t, err, blend.ErrNilValue)
}

func TestBuildRejectsEmptyAxisName(t *testing.T) {
	_, _, err := blend.Build([]blend.Item{
		{Location: location.Origin(), Value: algebra.Scalar(0)},
		{Location: location.Axis("", 1), Value: algebra.Scalar(1)},
	})
	assert.ErrorIs(t, err, blend.ErrEmptyAxisName)
}

func TestBuildOrderIndependence(t *testing.T) {
	forward := []blend.Item{
		{Location: location.New(map[string]float64{"pop": 1, "snap": 1}), Value: algebra.Scalar(1)},
		{Location: location.New(map[string]float64{"pop": 2, "snap": 1}), Value: algebra.Scalar(2)},
		{Location: location.New(map[string]float64{"pop": 1, "snap": 2}), Value: algebra.Scalar(4)},
		{Location: location.New(map[string]float64{"pop": 2, "snap": 2}), Value: algebra.Scalar(5)},
	}
	reversed := make([]blend.Item, len(forward))
	for i, it := range forward {
		reversed[len(forward)-1-i] = it
	}

	biasA, mA, errA := blend.Build(forward)
	biasB, mB, errB := blend.Build(reversed)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.True(t, biasA.Equal(biasB))

	query := location.New(map[string]float64{"pop": 1.7, "snap": 1.3})
	vA, err := mA.MakeInstance(blend.Single(query))
	require.NoError(t, err)
	vB, err := mB.MakeInstance(blend.Single(query))
	require.NoError(t, err)
	assert.Equal(t, vA, vB)
}

func TestMakeInstancePaired(t *testing.T) {
	_, m, err := blend.Build([]blend.Item{
		{Location: location.Origin(), Value: algebra.Pair{}},
		{Location: location.Axis("pop", 1), Value: algebra.Pair{X: 100, Y: 0}},
		{Location: location.Axis("snap", 1), Value: algebra.Pair{X: 0, Y: 100}},
	})
	require.NoError(t, err)

	v, err := m.MakeInstance(blend.Paired(
		location.Axis("pop", 1),
		location.Axis("snap", 1),
	))
	require.NoError(t, err)
	assert.Equal(t, algebra.Pair{X: 100, Y: 100}, v)
}

func TestQueryBeforeNeutralIsSet(t *testing.T) {
	m := blend.NewMutator()
	_, err := m.MakeInstance(blend.Single(location.Origin()))
	assert.ErrorIs(t, err, blend.ErrUninitialisedNeutral)
}
