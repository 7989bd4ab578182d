package ocean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The uniform packing paths need no GPU device, so FullWrite and TimeWrite are
// tested directly against the marshalled byte layout.

func TestNewSurfaceDefaults(t *testing.T) {
	s := NewSurface()

	assert.NotNil(t, s.Provider())
	assert.Equal(t, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, s.Model())
	assert.Equal(t, 0, s.WaveSet().Count())
}

func TestSurfaceFullWriteLayout(t *testing.T) {
	ws, err := NewWaveSet(
		Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
		Wave{Length: 12, Amplitude: 0.2, Steepness: 0.3, Direction: [2]float32{0, 1}},
	)
	assert.NoError(t, err)

	s := NewSurface(WithWaveSet(ws))

	var viewProj [16]float32
	for i := range viewProj {
		viewProj[i] = float32(i) * 0.5
	}
	cameraPos := [3]float32{4, 12, -6}

	w := s.FullWrite(3.25, viewProj, cameraPos)

	assert.Equal(t, s.Provider(), w.Provider)
	assert.Equal(t, UniformBinding, w.Binding)
	assert.Equal(t, uint64(0), w.Offset)
	assert.Len(t, w.Data, UniformSize)

	assert.InDelta(t, 3.25, readF32(w.Data, TimeOffset), 1e-6)
	assert.Equal(t, uint32(2), readU32(w.Data, WaveCountOffset))
	assert.InDelta(t, 0.3, readF32(w.Data, AmplitudeSumOffset), 1e-6)
	for i := range 16 {
		assert.InDelta(t, viewProj[i], readF32(w.Data, ViewProjOffset+i*4), 1e-6)
	}
	assert.InDelta(t, 4, readF32(w.Data, CameraPositionOffset), 1e-6)
	assert.InDelta(t, 12, readF32(w.Data, CameraPositionOffset+4), 1e-6)
	assert.InDelta(t, -6, readF32(w.Data, CameraPositionOffset+8), 1e-6)
}

func TestSurfaceTimeWrite(t *testing.T) {
	s := NewSurface()

	w := s.TimeWrite(7.5)

	assert.Equal(t, UniformBinding, w.Binding)
	assert.Equal(t, uint64(TimeOffset), w.Offset)
	assert.Len(t, w.Data, TimeSize)
	assert.InDelta(t, 7.5, readF32(w.Data, 0), 1e-6)
}

func TestSurfaceSetWaveSetReflectedInFullWrite(t *testing.T) {
	s := NewSurface()

	w := s.FullWrite(0, [16]float32{}, [3]float32{})
	assert.Equal(t, uint32(0), readU32(w.Data, WaveCountOffset))

	ws, err := NewWaveSet(Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}})
	assert.NoError(t, err)
	s.SetWaveSet(ws)

	w = s.FullWrite(0, [16]float32{}, [3]float32{})
	assert.Equal(t, uint32(1), readU32(w.Data, WaveCountOffset))
	assert.InDelta(t, 0.1, readF32(w.Data, AmplitudeSumOffset), 1e-6)
}

func TestSurfaceSetModelReflectedInFullWrite(t *testing.T) {
	s := NewSurface()

	model := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 10, 0, -5, 1}
	s.SetModel(model)
	assert.Equal(t, model, s.Model())

	w := s.FullWrite(0, [16]float32{}, [3]float32{})
	for i := range 16 {
		assert.InDelta(t, model[i], readF32(w.Data, ModelOffset+i*4), 1e-6)
	}
}

func TestSurfaceBuilderOptions(t *testing.T) {
	ws, err := NewWaveSet(Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}})
	assert.NoError(t, err)

	s := NewSurface(
		WithPlaneSize(128),
		WithPlaneResolution(64),
		WithWaveSet(ws),
	).(*surfaceImpl)

	assert.InDelta(t, 128, s.planeSize, 1e-6)
	assert.Equal(t, 64, s.planeResolution)
	assert.Equal(t, 1, s.waveSet.Count())

	// Invalid values leave the defaults in place.
	d := NewSurface(WithPlaneSize(-1), WithPlaneResolution(0)).(*surfaceImpl)
	assert.InDelta(t, 64, d.planeSize, 1e-6)
	assert.Equal(t, 256, d.planeResolution)
}
