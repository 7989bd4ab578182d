package ocean

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWaveSetValidation(t *testing.T) {
	tests := []struct {
		name  string
		waves []Wave
	}{
		{
			name:  "empty set",
			waves: nil,
		},
		{
			name: "zero length",
			waves: []Wave{
				{Length: 0, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
			},
		},
		{
			name: "negative length",
			waves: []Wave{
				{Length: -4, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
			},
		},
		{
			name: "zero amplitude",
			waves: []Wave{
				{Length: 8, Amplitude: 0, Steepness: 0.5, Direction: [2]float32{1, 0}},
			},
		},
		{
			name: "steepness above one",
			waves: []Wave{
				{Length: 8, Amplitude: 0.1, Steepness: 1.5, Direction: [2]float32{1, 0}},
			},
		},
		{
			name: "negative steepness",
			waves: []Wave{
				{Length: 8, Amplitude: 0.1, Steepness: -0.1, Direction: [2]float32{1, 0}},
			},
		},
		{
			name: "non-unit direction",
			waves: []Wave{
				{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 1}},
			},
		},
		{
			name: "zero direction",
			waves: []Wave{
				{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{0, 0}},
			},
		},
		{
			name: "second wave invalid",
			waves: []Wave{
				{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
				{Length: 8, Amplitude: -1, Steepness: 0.5, Direction: [2]float32{1, 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWaveSet(tt.waves...)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "error should wrap ErrInvalidParameter, got %v", err)
		})
	}
}

func TestNewWaveSetTooManyWaves(t *testing.T) {
	waves := make([]Wave, MaxWaves+1)
	for i := range waves {
		waves[i] = Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}}
	}

	_, err := NewWaveSet(waves...)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestNewWaveSetAcceptsMaxWaves(t *testing.T) {
	waves := make([]Wave, MaxWaves)
	for i := range waves {
		waves[i] = Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}}
	}

	ws, err := NewWaveSet(waves...)
	assert.NoError(t, err)
	assert.Equal(t, MaxWaves, ws.Count())
}

func TestNewWaveSetDirectionTolerance(t *testing.T) {
	// Slightly off unit but within tolerance.
	ws, err := NewWaveSet(Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1.0005, 0}})
	assert.NoError(t, err)
	assert.Equal(t, 1, ws.Count())

	// Just outside tolerance.
	_, err = NewWaveSet(Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1.01, 0}})
	assert.Error(t, err)
}

func TestWaveSetAmplitudeSum(t *testing.T) {
	ws, err := NewWaveSet(
		Wave{Length: 8, Amplitude: 0.10, Steepness: 1.0, Direction: [2]float32{0.6, 0.8}},
		Wave{Length: 14, Amplitude: 0.18, Steepness: 0.8, Direction: [2]float32{1, 0}},
		Wave{Length: 22, Amplitude: 0.25, Steepness: 0.6, Direction: [2]float32{0, 1}},
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, ws.Count())
	assert.InDelta(t, 0.53, ws.AmplitudeSum(), 1e-6)
}

func TestWaveSetCopiesDescriptors(t *testing.T) {
	input := []Wave{
		{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
	}
	ws, err := NewWaveSet(input...)
	assert.NoError(t, err)

	// Mutating the caller's slice must not affect the set.
	input[0].Amplitude = 99
	assert.InDelta(t, 0.1, ws.Waves()[0].Amplitude, 1e-6)

	// Mutating the returned copy must not affect the set either.
	out := ws.Waves()
	out[0].Length = 99
	assert.InDelta(t, 8, ws.Waves()[0].Length, 1e-6)
}

func TestZeroValueWaveSet(t *testing.T) {
	var ws WaveSet
	assert.Equal(t, 0, ws.Count())
	assert.Zero(t, ws.AmplitudeSum())
	assert.Empty(t, ws.Waves())
}
