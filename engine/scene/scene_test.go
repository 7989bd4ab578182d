package scene

import (
	"testing"

	"github.com/Carmen-Shannon/swell-go/common"
	"github.com/Carmen-Shannon/swell-go/engine/camera"
	"github.com/Carmen-Shannon/swell-go/engine/ocean"
	"github.com/Carmen-Shannon/swell-go/engine/renderer"
	"github.com/Carmen-Shannon/swell-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/swell-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

// recordingRenderer satisfies renderer.Renderer without a GPU device,
// recording the calls the scene makes against it.
type recordingRenderer struct {
	meshBuffersInit bool
	bindGroupInit   bool
	registeredKeys  []string

	// One entry per WriteBuffers call: the data length of each staged write.
	writeBatches [][]int
	drawKeys     []string
}

func (r *recordingRenderer) Pipeline(key string) pipeline.Pipeline { return nil }

func (r *recordingRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		r.registeredKeys = append(r.registeredKeys, p.PipelineKey())
	}
	return nil
}

func (r *recordingRenderer) Resize(width, height int) {}

func (r *recordingRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	r.meshBuffersInit = true
	return nil
}

func (r *recordingRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	r.bindGroupInit = true
	return nil
}

func (r *recordingRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (r *recordingRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (r *recordingRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	// The scene reuses its staging slice across frames, so copy what matters.
	lengths := make([]int, len(writes))
	for i, w := range writes {
		lengths[i] = len(w.Data)
	}
	r.writeBatches = append(r.writeBatches, lengths)
}

func (r *recordingRenderer) BeginFrame() error { return nil }

func (r *recordingRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.drawKeys = append(r.drawKeys, pipelineKey)
	return nil
}

func (r *recordingRenderer) EndFrame()                                {}
func (r *recordingRenderer) Present()                                 {}
func (r *recordingRenderer) SetPresentMode(mode renderer.PresentMode) {}

var _ renderer.Renderer = &recordingRenderer{}

func testScene(t *testing.T) (Scene, *recordingRenderer) {
	t.Helper()

	ws, err := ocean.NewWaveSet(
		ocean.Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}},
	)
	assert.NoError(t, err)

	r := &recordingRenderer{}
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
	surface := ocean.NewSurface(ocean.WithPlaneResolution(4), ocean.WithWaveSet(ws))

	s := NewScene("test", cam, r, surface, WithProbeWorkers(2))
	return s, r
}

func TestNewSceneInitializesSurface(t *testing.T) {
	_, r := testScene(t)

	assert.True(t, r.meshBuffersInit)
	assert.True(t, r.bindGroupInit)
	assert.Equal(t, []string{ocean.PipelineKey}, r.registeredKeys)
}

func TestNewSceneRequiresDependencies(t *testing.T) {
	ws, _ := ocean.NewWaveSet(ocean.Wave{Length: 8, Amplitude: 0.1, Steepness: 0.5, Direction: [2]float32{1, 0}})
	r := &recordingRenderer{}
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
	surface := ocean.NewSurface(ocean.WithPlaneResolution(4), ocean.WithWaveSet(ws))

	assert.Panics(t, func() { NewScene("x", nil, r, surface) })
	assert.Panics(t, func() { NewScene("x", cam, nil, surface) })
	assert.Panics(t, func() { NewScene("x", cam, r, nil) })
}

func TestUpdateStagesFullThenTimeOnlyWrites(t *testing.T) {
	s, r := testScene(t)

	// First frame: everything must reach the GPU.
	s.Update(1.0 / 60.0)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, [][]int{{ocean.UniformSize}}, r.writeBatches)

	// Static camera, static waves: only the clock moves.
	s.Update(1.0 / 60.0)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.TimeSize}, r.writeBatches[1])

	s.Update(1.0 / 60.0)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.TimeSize}, r.writeBatches[2])
}

func TestUpdateStagesFullWriteAfterCameraMoves(t *testing.T) {
	s, r := testScene(t)

	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.TimeSize}, r.writeBatches[1])

	s.Camera().Controller().Orbit(25, 10)
	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.UniformSize}, r.writeBatches[2])

	// Settled again: back to time-only.
	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.TimeSize}, r.writeBatches[3])
}

func TestUpdateStagesFullWriteAfterWaveSwap(t *testing.T) {
	s, r := testScene(t)

	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())

	ws, err := ocean.NewWaveSet(
		ocean.Wave{Length: 12, Amplitude: 0.2, Steepness: 0.3, Direction: [2]float32{0, 1}},
	)
	assert.NoError(t, err)
	s.SetWaveSet(ws)

	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.UniformSize}, r.writeBatches[2])
}

func TestUpdateStagesFullWriteAfterCameraReplaced(t *testing.T) {
	s, r := testScene(t)

	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())

	s.SetCamera(camera.NewCamera(camera.WithController(camera.NewCameraController())))
	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []int{ocean.UniformSize}, r.writeBatches[2])
}

func TestDrawCallsIssuesSurfaceDraw(t *testing.T) {
	s, r := testScene(t)

	s.Update(0.016)
	assert.NoError(t, s.DrawCalls())
	assert.Equal(t, []string{ocean.PipelineKey}, r.drawKeys)

	// Without a new Update there is nothing staged to flush, but the draw
	// still happens.
	assert.NoError(t, s.DrawCalls())
	assert.Len(t, r.writeBatches, 1)
	assert.Len(t, r.drawKeys, 2)
}

func TestElapsedTimeAccumulates(t *testing.T) {
	s, _ := testScene(t)

	assert.Zero(t, s.ElapsedTime())
	s.Update(0.5)
	s.Update(0.25)
	assert.InDelta(t, 0.75, s.ElapsedTime(), 1e-6)

	// Non-positive deltas never rewind the clock.
	s.Update(-1)
	s.Update(0)
	assert.InDelta(t, 0.75, s.ElapsedTime(), 1e-6)
}

func TestProbeMatchesSerialEvaluation(t *testing.T) {
	s, _ := testScene(t)
	s.Update(0.5)

	positions := make([][3]float32, 200)
	for i := range positions {
		positions[i] = [3]float32{float32(i) * 0.1, 0, float32(i) * -0.2}
	}

	got := s.Probe(positions)

	waves := s.Surface().WaveSet()
	model := s.Surface().Model()
	want := ocean.EvaluateField(nil, waves, &model, s.ElapsedTime(), positions)
	assert.Equal(t, want, got)
}

func TestSceneActiveAndName(t *testing.T) {
	s, _ := testScene(t)

	assert.False(t, s.Active())
	s.SetActive(true)
	assert.True(t, s.Active())

	assert.Equal(t, "test", s.Name())
	s.SetName("renamed")
	assert.Equal(t, "renamed", s.Name())
}
