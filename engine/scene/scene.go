package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/swell-go/engine/camera"
	"github.com/Carmen-Shannon/swell-go/engine/ocean"
	"github.com/Carmen-Shannon/swell-go/engine/renderer"
	"github.com/Carmen-Shannon/swell-go/engine/renderer/bind_group_provider"
)

// Scene owns the per-frame orchestration for one ocean view: the simulation
// clock, the camera, and the ocean surface. Update advances the clock and
// stages the uniform write for the frame; DrawCalls flushes staged writes and
// issues the surface draw. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera. The next Update performs a full
	// uniform write so the new matrices reach the GPU.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Surface returns the scene's ocean surface.
	Surface() ocean.Surface

	// ElapsedTime returns the simulation time in seconds since the scene was created.
	//
	// Returns:
	//   - float32: elapsed simulation time
	ElapsedTime() float32

	// SetWaveSet swaps the active wave set on the surface. The swap takes
	// effect on the next Update, which performs a full uniform write; frames
	// already staged are unaffected.
	//
	// Parameters:
	//   - ws: the validated wave set to activate
	SetWaveSet(ws ocean.WaveSet)

	// Update advances the simulation clock, updates the camera matrices, and
	// stages the frame's uniform write. A full write is staged on the first
	// frame and whenever the camera or wave state changed since the previous
	// frame; otherwise only the time scalar is staged.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	Update(deltaTime float32)

	// DrawCalls flushes staged buffer writes and issues the ocean surface draw.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if the draw call fails
	DrawCalls() error

	// Probe evaluates the CPU reference displacement at the given base
	// positions for the current simulation time, using the scene's worker
	// pool. Useful for gameplay queries (floating objects, spray emitters)
	// that need the same surface the GPU renders.
	//
	// Parameters:
	//   - positions: object-space base positions to displace
	//
	// Returns:
	//   - []ocean.DisplacedPoint: world-space position and normal per input
	Probe(positions [][3]float32) []ocean.DisplacedPoint

	// Release releases the surface's GPU resources. The probe pool's workers
	// idle-exit on their own once no more tasks arrive.
	Release()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam     camera.Camera
	r       renderer.Renderer
	surface ocean.Surface

	elapsed float32

	// Snapshot of the camera state last written to the GPU, used to decide
	// between the full and time-only write paths.
	lastViewProj  [16]float32
	lastCameraPos [3]float32
	wroteFull     bool
	wavesDirty    bool

	// Staged writes for the current frame, flushed by DrawCalls. Reused
	// across frames to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite

	// probePool manages a bounded set of reusable goroutines for CPU
	// displacement queries. Workers persist across frames, avoiding per-call
	// goroutine spawn/teardown overhead.
	probePool    worker.DynamicWorkerPool
	probeWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera, renderer, and ocean
// surface. All three are required and NewScene panics if any of them is nil.
// The surface's GPU resources are initialized here if they have not been
// already.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - surface: the ocean surface to render (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, surface ocean.Surface, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if surface == nil {
		panic("scene: NewScene requires a non-nil Surface")
	}

	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		active:       false,
		cam:          cam,
		r:            r,
		surface:      surface,
		probeWorkers: max(runtime.NumCPU()-1, 1),
		writePool:    make([]bind_group_provider.BufferWrite, 0, 2),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the probe pool after options so WithProbeWorkers can override
	// the default. Queue size of 256 accommodates chunked field evaluations
	// over high-resolution grids with headroom.
	s.probePool = worker.NewDynamicWorkerPool(s.probeWorkers, 256, 1*time.Second)

	if surface.Provider().BindGroup() == nil {
		if err := surface.Init(r); err != nil {
			panic(fmt.Sprintf("scene: failed to init ocean surface: %v", err))
		}
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
	s.wroteFull = false
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Surface() ocean.Surface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surface
}

func (s *scene) ElapsedTime() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

func (s *scene) SetWaveSet(ws ocean.WaveSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface.SetWaveSet(ws)
	s.wavesDirty = true
}

func (s *scene) Update(deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deltaTime > 0 {
		s.elapsed += deltaTime
	}

	s.cam.Update()
	viewProj := s.cam.ViewProjectionMatrix()
	px, py, pz := s.cam.Position()
	cameraPos := [3]float32{px, py, pz}

	// Full write whenever the rest of the uniform changed; otherwise the
	// buffer already holds the correct matrices and wave data, and only the
	// time scalar needs to move.
	full := !s.wroteFull || s.wavesDirty || viewProj != s.lastViewProj || cameraPos != s.lastCameraPos

	s.writePool = s.writePool[:0]
	if full {
		s.writePool = append(s.writePool, s.surface.FullWrite(s.elapsed, viewProj, cameraPos))
		s.lastViewProj = viewProj
		s.lastCameraPos = cameraPos
		s.wroteFull = true
		s.wavesDirty = false
	} else {
		s.writePool = append(s.writePool, s.surface.TimeWrite(s.elapsed))
	}
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.writePool) > 0 {
		s.r.WriteBuffers(s.writePool)
		s.writePool = s.writePool[:0]
	}

	provider := s.surface.Provider()
	return s.r.DrawCall(ocean.PipelineKey, provider, 1, []bind_group_provider.BindGroupProvider{provider})
}

func (s *scene) Probe(positions [][3]float32) []ocean.DisplacedPoint {
	s.mu.RLock()
	pool := s.probePool
	waves := s.surface.WaveSet()
	model := s.surface.Model()
	elapsed := s.elapsed
	s.mu.RUnlock()

	return ocean.EvaluateField(pool, waves, &model, elapsed, positions)
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface.Release()
}
