package ocean

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func readU32(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset:])
}

func TestGPUOceanUniformSize(t *testing.T) {
	var u GPUOceanUniform
	assert.Equal(t, UniformSize, u.Size())
	assert.Equal(t, 416, u.Size())
}

func TestGPUOceanUniformMarshalLayout(t *testing.T) {
	ws, err := NewWaveSet(
		Wave{Length: 8, Amplitude: 0.10, Steepness: 1.0, Direction: [2]float32{0.6, 0.8}},
		Wave{Length: 14, Amplitude: 0.18, Steepness: 0.8, Direction: [2]float32{1, 0}},
	)
	assert.NoError(t, err)

	var u GPUOceanUniform
	u.Time = 2.5
	for i := range 16 {
		u.Model[i] = float32(i)
		u.ViewProj[i] = float32(100 + i)
	}
	u.CameraPosition = [3]float32{7, 8, 9}
	u.ApplyWaveSet(ws)

	buf := u.Marshal()
	assert.Len(t, buf, UniformSize)

	assert.InDelta(t, 2.5, readF32(buf, TimeOffset), 1e-6)
	assert.Equal(t, uint32(2), readU32(buf, WaveCountOffset))
	assert.InDelta(t, 0.28, readF32(buf, AmplitudeSumOffset), 1e-6)

	for i := range 16 {
		assert.InDelta(t, float32(i), readF32(buf, ModelOffset+i*4), 1e-6)
		assert.InDelta(t, float32(100+i), readF32(buf, ViewProjOffset+i*4), 1e-6)
	}

	assert.InDelta(t, 7, readF32(buf, CameraPositionOffset), 1e-6)
	assert.InDelta(t, 8, readF32(buf, CameraPositionOffset+4), 1e-6)
	assert.InDelta(t, 9, readF32(buf, CameraPositionOffset+8), 1e-6)

	// Wave 0 at the array base.
	assert.InDelta(t, 8, readF32(buf, WavesOffset), 1e-6)
	assert.InDelta(t, 0.10, readF32(buf, WavesOffset+4), 1e-6)
	assert.InDelta(t, 1.0, readF32(buf, WavesOffset+8), 1e-6)
	assert.InDelta(t, 0.6, readF32(buf, WavesOffset+16), 1e-6)
	assert.InDelta(t, 0.8, readF32(buf, WavesOffset+20), 1e-6)

	// Wave 1 one stride in.
	base := WavesOffset + WaveStride
	assert.InDelta(t, 14, readF32(buf, base), 1e-6)
	assert.InDelta(t, 0.18, readF32(buf, base+4), 1e-6)
	assert.InDelta(t, 0.8, readF32(buf, base+8), 1e-6)
	assert.InDelta(t, 1, readF32(buf, base+16), 1e-6)
	assert.InDelta(t, 0, readF32(buf, base+20), 1e-6)

	// Inactive slots marshal as zeroes.
	for w := 2; w < MaxWaves; w++ {
		slot := WavesOffset + w*WaveStride
		for b := 0; b < WaveStride; b++ {
			assert.Zero(t, buf[slot+b], "wave slot %d byte %d", w, b)
		}
	}
}

func TestApplyWaveSetZeroesStaleSlots(t *testing.T) {
	big, err := NewWaveSet(
		Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
		Wave{Length: 10, Amplitude: 0.2, Steepness: 0.5, Direction: [2]float32{0, 1}},
		Wave{Length: 12, Amplitude: 0.3, Steepness: 0.5, Direction: [2]float32{1, 0}},
	)
	assert.NoError(t, err)
	small, err := NewWaveSet(
		Wave{Length: 20, Amplitude: 0.4, Steepness: 0.2, Direction: [2]float32{0, 1}},
	)
	assert.NoError(t, err)

	var u GPUOceanUniform
	u.ApplyWaveSet(big)
	u.ApplyWaveSet(small)

	assert.Equal(t, uint32(1), u.WaveCount)
	assert.InDelta(t, 0.4, u.AmplitudeSum, 1e-6)
	assert.Equal(t, GPUWave{}, u.Waves[1])
	assert.Equal(t, GPUWave{}, u.Waves[2])

	// Packing the same set into a dirty and a fresh uniform must agree byte
	// for byte.
	var fresh GPUOceanUniform
	fresh.ApplyWaveSet(small)
	assert.Equal(t, fresh.Marshal(), u.Marshal())
}

func TestMarshalTimeMatchesFullMarshal(t *testing.T) {
	var u GPUOceanUniform
	u.Time = 13.37

	full := u.Marshal()
	partial := u.MarshalTime()

	assert.Len(t, partial, TimeSize)
	assert.Equal(t, full[TimeOffset:TimeOffset+TimeSize], partial)
}

func TestMarshalDeterministic(t *testing.T) {
	ws, err := NewWaveSet(Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}})
	assert.NoError(t, err)

	var u GPUOceanUniform
	u.Time = 1
	u.ApplyWaveSet(ws)

	assert.Equal(t, u.Marshal(), u.Marshal())
}
