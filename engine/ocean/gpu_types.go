package ocean

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUOceanUniformSource is the canonical WGSL source for the ocean pipeline,
// including the OceanUniform and Wave struct definitions that GPUOceanUniform
// and GPUWave must match byte for byte.
//
//go:embed assets/ocean.wgsl
var GPUOceanUniformSource string

// Byte offsets into the marshalled GPUOceanUniform buffer. These are the wire
// contract with the WGSL OceanUniform struct (std140-style uniform alignment):
// the scalar block is padded to 16 bytes before the first matrix, the camera
// position vec3 is padded to 16, and each wave occupies a 32-byte stride with
// its direction in a 16-byte-aligned vec2 slot.
const (
	TimeOffset           = 0
	TimeSize             = 4
	WaveCountOffset      = 4
	AmplitudeSumOffset   = 8
	ModelOffset          = 16
	ViewProjOffset       = 80
	CameraPositionOffset = 144
	WavesOffset          = 160
	WaveStride           = 32
	UniformSize          = WavesOffset + MaxWaves*WaveStride // 416
)

// GPUWave is the GPU-aligned representation of a single wave descriptor.
// Matches the WGSL Wave struct layout exactly (see GPUOceanUniformSource).
// Size: 32 bytes (4 length + 4 amplitude + 4 steepness + 4 pad, direction in
// a 16-byte-aligned vec2 slot + 8 pad).
type GPUWave struct {
	Length    float32    // offset  0: wavelength in world units
	Amplitude float32    // offset  4: baseline-to-crest height
	Steepness float32    // offset  8: crest sharpness in [0, 1]
	_pad0     float32    // offset 12: padding to align direction
	Direction [2]float32 // offset 16: unit XZ travel direction (vec2<f32>, align 16)
	_pad1     [2]float32 // offset 24: padding to 32-byte stride
}

// GPUOceanUniform is the GPU-aligned frame uniform for the ocean pipeline.
// Matches the WGSL OceanUniform struct layout exactly (see
// GPUOceanUniformSource). Size: 416 bytes.
//
// The frame orchestrator has two legal write patterns against the same
// layout: one full Marshal per frame, or a full write when camera/wave state
// changes plus MarshalTime partial writes at TimeOffset on the frames in
// between. Both produce identical buffer contents.
type GPUOceanUniform struct {
	Time           float32           // offset   0: simulation time in seconds
	WaveCount      uint32            // offset   4: number of active waves (<= MaxWaves)
	AmplitudeSum   float32           // offset   8: sum of active wave amplitudes
	_pad0          float32           // offset  12: padding to 16 before the matrices
	Model          [16]float32       // offset  16: model-to-world transform (mat4x4<f32>)
	ViewProj       [16]float32       // offset  80: combined view-projection matrix (mat4x4<f32>)
	CameraPosition [3]float32        // offset 144: world-space camera position (vec3<f32>)
	_pad1          float32           // offset 156: padding to 160
	Waves          [MaxWaves]GPUWave // offset 160: wave array, 32-byte stride
}

// Size returns the size of the GPUOceanUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (416)
func (g *GPUOceanUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// ApplyWaveSet copies a validated wave set into the uniform: the active
// descriptors in superposition order, the count, and the amplitude sum.
// Unused wave slots are zeroed so equal inputs always marshal to identical
// bytes.
//
// Parameters:
//   - ws: the wave set to pack
func (g *GPUOceanUniform) ApplyWaveSet(ws WaveSet) {
	g.Waves = [MaxWaves]GPUWave{}
	for i, w := range ws.waves {
		g.Waves[i] = GPUWave{
			Length:    w.Length,
			Amplitude: w.Amplitude,
			Steepness: w.Steepness,
			Direction: w.Direction,
		}
	}
	g.WaveCount = uint32(ws.Count())
	g.AmplitudeSum = ws.AmplitudeSum()
}

// Marshal serializes the GPUOceanUniform struct into a byte buffer suitable
// for GPU upload. Pure function of the struct's fields: equal inputs produce
// byte-identical output.
//
// Returns:
//   - []byte: 416-byte buffer ready for GPU upload
func (g *GPUOceanUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[TimeOffset:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[WaveCountOffset:], g.WaveCount)
	binary.LittleEndian.PutUint32(buf[AmplitudeSumOffset:], math.Float32bits(g.AmplitudeSum))
	binary.LittleEndian.PutUint32(buf[12:], 0) // _pad0
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[ModelOffset+i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[ViewProjOffset+i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[CameraPositionOffset+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[156:], 0) // _pad1
	for w := range MaxWaves {
		base := WavesOffset + w*WaveStride
		binary.LittleEndian.PutUint32(buf[base+0:], math.Float32bits(g.Waves[w].Length))
		binary.LittleEndian.PutUint32(buf[base+4:], math.Float32bits(g.Waves[w].Amplitude))
		binary.LittleEndian.PutUint32(buf[base+8:], math.Float32bits(g.Waves[w].Steepness))
		binary.LittleEndian.PutUint32(buf[base+12:], 0) // _pad0
		binary.LittleEndian.PutUint32(buf[base+16:], math.Float32bits(g.Waves[w].Direction[0]))
		binary.LittleEndian.PutUint32(buf[base+20:], math.Float32bits(g.Waves[w].Direction[1]))
		binary.LittleEndian.PutUint32(buf[base+24:], 0) // _pad1
		binary.LittleEndian.PutUint32(buf[base+28:], 0)
	}
	return buf
}

// MarshalTime serializes only the time scalar for the partial-update write
// path. The result is written at TimeOffset into the existing GPU buffer; the
// rest of the buffer is untouched, so the buffer stays consistent with the
// last full Marshal.
//
// Returns:
//   - []byte: 4-byte buffer holding the time scalar
func (g *GPUOceanUniform) MarshalTime() []byte {
	buf := make([]byte, TimeSize)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(g.Time))
	return buf
}
