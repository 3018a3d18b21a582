package model

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyEstimator struct {
	State   *StateManager
	Weights []float64
}

func TestSaveLoadModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dummy.mdl")

	orig := &dummyEstimator{
		State:   NewStateManager(),
		Weights: []float64{1.5, -2.25, 0.0},
	}
	orig.State.SetDimensions(3, 100)
	orig.State.SetFitted()

	require.NoError(t, SaveModel(orig, path))

	var loaded dummyEstimator
	require.NoError(t, LoadModel(&loaded, path))

	assert.Equal(t, orig.Weights, loaded.Weights)
	assert.True(t, loaded.State.IsFitted())

	nFeatures, nSamples := loaded.State.GetDimensions()
	assert.Equal(t, 3, nFeatures)
	assert.Equal(t, 100, nSamples)
}

func TestLoadModelMissingFile(t *testing.T) {
	var loaded dummyEstimator
	err := LoadModel(&loaded, filepath.Join(t.TempDir(), "does-not-exist.mdl"))
	assert.Error(t, err)
}

func TestSaveLoadModelWriterReader(t *testing.T) {
	var buf bytes.Buffer

	orig := &dummyEstimator{State: NewStateManager(), Weights: []float64{42}}
	require.NoError(t, SaveModelToWriter(orig, &buf))

	var loaded dummyEstimator
	require.NoError(t, LoadModelFromReader(&loaded, &buf))
	assert.Equal(t, []float64{42}, loaded.Weights)
}

func TestStateManagerReset(t *testing.T) {
	s := NewStateManager()
	assert.False(t, s.IsFitted())

	s.SetDimensions(4, 150)
	s.SetFitted()
	assert.True(t, s.IsFitted())

	s.Reset()
	assert.False(t, s.IsFitted())
	nFeatures, nSamples := s.GetDimensions()
	assert.Zero(t, nFeatures)
	assert.Zero(t, nSamples)
}
