package ocean

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/swell-go/common"
	"github.com/Carmen-Shannon/swell-go/engine/mesh"
	"github.com/Carmen-Shannon/swell-go/engine/renderer"
	"github.com/Carmen-Shannon/swell-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/swell-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// Bind group binding indices for the ocean pipeline. These must match the
// @binding attributes in the embedded WGSL source.
const (
	UniformBinding     = 0
	RampTextureBinding = 1
	RampSamplerBinding = 2
)

// PipelineKey is the cache key the ocean surface registers its render
// pipeline under.
const PipelineKey = "ocean_surface"

// surfaceImpl is the unexported implementation of Surface.
type surfaceImpl struct {
	mu *sync.Mutex

	planeSize       float32
	planeResolution int

	grid     mesh.Mesh
	ramp     *Ramp
	waveSet  WaveSet
	model    [16]float32
	uniform  GPUOceanUniform
	provider bind_group_provider.BindGroupProvider

	initialized bool
}

// Surface is the drawable ocean: a subdivided plane displaced in the vertex
// stage by the active wave set, shaded with the height ramp texture. It owns
// the GPU resources for one draw call (mesh buffers, ramp texture, sampler,
// uniform buffer, bind group) and produces the per-frame uniform writes.
type Surface interface {
	// Init creates all GPU resources for the surface: vertex/index buffers for
	// the plane grid, the 1D ramp texture with a clamping linear sampler, the
	// uniform buffer and bind group, and the render pipeline. Must be called
	// once before the first frame.
	//
	// Parameters:
	//   - r: the renderer that owns the GPU device
	//
	// Returns:
	//   - error: an error if any GPU resource creation fails
	Init(r renderer.Renderer) error

	// Provider returns the surface's bind group provider holding its GPU resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider
	Provider() bind_group_provider.BindGroupProvider

	// Mesh returns the CPU-side plane grid the surface draws.
	//
	// Returns:
	//   - mesh.Mesh: the plane mesh
	Mesh() mesh.Mesh

	// Model returns the current model-to-world transform.
	//
	// Returns:
	//   - [16]float32: the model matrix (column-major)
	Model() [16]float32

	// SetModel sets the model-to-world transform. Takes effect on the next FullWrite.
	//
	// Parameters:
	//   - model: the model matrix (column-major)
	SetModel(model [16]float32)

	// WaveSet returns the active wave set.
	//
	// Returns:
	//   - WaveSet: the active waves
	WaveSet() WaveSet

	// SetWaveSet swaps the active wave set. The change reaches the GPU on the
	// next FullWrite, so callers should only swap between frames.
	//
	// Parameters:
	//   - ws: the validated wave set to activate
	SetWaveSet(ws WaveSet)

	// FullWrite packs the complete frame uniform (time, wave data, matrices,
	// camera position) and returns a write covering the whole uniform buffer.
	//
	// Parameters:
	//   - elapsedTime: simulation time in seconds
	//   - viewProj: the combined view-projection matrix
	//   - cameraPos: the world-space camera position
	//
	// Returns:
	//   - bind_group_provider.BufferWrite: the staged write for Renderer.WriteBuffers
	FullWrite(elapsedTime float32, viewProj [16]float32, cameraPos [3]float32) bind_group_provider.BufferWrite

	// TimeWrite packs only the time scalar and returns a 4-byte write at the
	// start of the uniform buffer. Valid only after at least one FullWrite has
	// established the rest of the buffer contents.
	//
	// Parameters:
	//   - elapsedTime: simulation time in seconds
	//
	// Returns:
	//   - bind_group_provider.BufferWrite: the staged partial write
	TimeWrite(elapsedTime float32) bind_group_provider.BufferWrite

	// Release releases the surface's GPU resources.
	Release()
}

var _ Surface = &surfaceImpl{}

// NewSurface creates a new ocean Surface with the given options. Defaults: a
// 64-unit plane at resolution 256, the default ramp, and an empty wave set
// (flat water).
//
// Parameters:
//   - options: functional options to configure the surface
//
// Returns:
//   - Surface: the configured surface (GPU resources not yet created)
func NewSurface(options ...SurfaceBuilderOption) Surface {
	s := &surfaceImpl{
		mu:              &sync.Mutex{},
		planeSize:       64.0,
		planeResolution: 256,
		ramp:            DefaultRamp(),
		model:           [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		provider:        bind_group_provider.NewBindGroupProvider(PipelineKey),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *surfaceImpl) Init(r renderer.Renderer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return fmt.Errorf("ocean surface already initialized")
	}

	s.grid = mesh.Plane(s.planeSize, s.planeResolution)
	if err := r.InitMeshBuffers(s.provider, s.grid.VertexBytes(), s.grid.IndexBytes(), len(s.grid.Indices)); err != nil {
		return fmt.Errorf("failed to create ocean mesh buffers: %w", err)
	}

	if err := r.InitTextureView(s.provider, RampTextureBinding, s.ramp.StagingData()); err != nil {
		return fmt.Errorf("failed to create ramp texture: %w", err)
	}

	if err := r.InitSampler(s.provider, RampSamplerBinding, common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
	}); err != nil {
		return fmt.Errorf("failed to create ramp sampler: %w", err)
	}

	if err := r.InitBindGroup(s.provider, s.bindGroupLayout(), nil, nil); err != nil {
		return fmt.Errorf("failed to create ocean bind group: %w", err)
	}

	p := pipeline.NewPipeline(PipelineKey,
		pipeline.WithSource(GPUOceanUniformSource),
		pipeline.WithVertexLayouts(mesh.VertexBufferLayout()),
		pipeline.WithBindGroupLayouts(s.bindGroupLayout()),
	)
	if err := r.RegisterPipelines(p); err != nil {
		return fmt.Errorf("failed to register ocean pipeline: %w", err)
	}

	s.initialized = true
	return nil
}

func (s *surfaceImpl) Provider() bind_group_provider.BindGroupProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider
}

func (s *surfaceImpl) Mesh() mesh.Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

func (s *surfaceImpl) Model() [16]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

func (s *surfaceImpl) SetModel(model [16]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

func (s *surfaceImpl) WaveSet() WaveSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waveSet
}

func (s *surfaceImpl) SetWaveSet(ws WaveSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waveSet = ws
}

func (s *surfaceImpl) FullWrite(elapsedTime float32, viewProj [16]float32, cameraPos [3]float32) bind_group_provider.BufferWrite {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uniform.Time = elapsedTime
	s.uniform.Model = s.model
	s.uniform.ViewProj = viewProj
	s.uniform.CameraPosition = cameraPos
	s.uniform.ApplyWaveSet(s.waveSet)

	return bind_group_provider.BufferWrite{
		Provider: s.provider,
		Binding:  UniformBinding,
		Offset:   0,
		Data:     s.uniform.Marshal(),
	}
}

func (s *surfaceImpl) TimeWrite(elapsedTime float32) bind_group_provider.BufferWrite {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uniform.Time = elapsedTime

	return bind_group_provider.BufferWrite{
		Provider: s.provider,
		Binding:  UniformBinding,
		Offset:   TimeOffset,
		Data:     s.uniform.MarshalTime(),
	}
}

func (s *surfaceImpl) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider.Release()
	s.initialized = false
}

// bindGroupLayout returns the layout descriptor for the ocean bind group:
// the frame uniform at binding 0, the ramp texture at binding 1, and its
// sampler at binding 2. Caller must hold the mutex.
func (s *surfaceImpl) bindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: PipelineKey + " Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    UniformBinding,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: UniformSize,
				},
			},
			{
				Binding:    RampTextureBinding,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    RampSamplerBinding,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}
