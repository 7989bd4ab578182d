package ocean

import (
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/swell-go/common"
)

// gravity is the gravitational constant used by the deep-water dispersion
// relation omega = sqrt(g * k).
const gravity = 9.8

// fieldChunkSize is how many vertices each worker task evaluates. Large enough
// to amortize task submission, small enough to spread a typical grid across
// all workers.
const fieldChunkSize = 1024

// DisplacedPoint is the result of evaluating the wave field at one base
// vertex: the world-space displaced position and the normalized analytic
// surface normal. Recomputed every frame; never persisted.
type DisplacedPoint struct {
	WorldPosition [3]float32
	Normal        [3]float32
}

// Displace evaluates the Gerstner superposition at a single object-space
// position and returns the displaced world position and unit surface normal.
//
// For each wave i with length L, amplitude A, steepness S, and unit direction
// D, over worldBase = model * position:
//
//	k     = 2*pi / L
//	omega = sqrt(g * k)
//	Q     = S / (A * k * count)
//	phase = dot(D*k, worldBase.xz) - omega * elapsedTime
//
// Horizontal offsets (Q * D * A * sin) pull points toward crests, the vertical
// offset is A * cos, and the normal terms are the analytic gradient of the
// displacement field, so shading stays artifact-free at any tessellation
// density. Q divides by the active wave count: without that, several steep
// waves folded together would self-intersect the surface.
//
// An empty wave set short-circuits to (worldBase, (0, 1, 0)).
//
// This is a pure function with no shared state between calls; it may be mapped
// over any number of vertices concurrently (see EvaluateField).
//
// Parameters:
//   - waves: the validated wave set
//   - model: the 4x4 column-major model-to-world transform
//   - elapsedTime: simulation time in seconds
//   - position: the base vertex position in object space
//
// Returns:
//   - worldPos: the displaced world-space position
//   - normal: the normalized surface normal
func Displace(waves WaveSet, model *[16]float32, elapsedTime float32, position [3]float32) (worldPos, normal [3]float32) {
	baseX, baseY, baseZ := common.TransformPoint(model[:], position[0], position[1], position[2])

	count := waves.Count()
	if count == 0 {
		return [3]float32{baseX, baseY, baseZ}, [3]float32{0, 1, 0}
	}

	var offX, offY, offZ float32
	var nX, nY, nZ float32

	for _, w := range waves.waves {
		k := 2 * math32.Pi / w.Length
		omega := math32.Sqrt(gravity * k)
		q := w.Steepness / (w.Amplitude * k * float32(count))

		phase := w.Direction[0]*k*baseX + w.Direction[1]*k*baseZ - omega*elapsedTime
		s, c := math32.Sincos(phase)

		offX += q * w.Direction[0] * w.Amplitude * s
		offZ += q * w.Direction[1] * w.Amplitude * s
		offY += w.Amplitude * c

		nX += w.Direction[0] * w.Amplitude * k * s
		nZ += w.Direction[1] * w.Amplitude * k * s
		nY += q * w.Amplitude * k * c
	}

	worldPos = [3]float32{baseX - offX, offY, baseZ - offZ}
	normal = [3]float32{nX, 1 - nY, nZ}
	if !common.Normalize3(&normal) {
		normal = [3]float32{0, 1, 0}
	}
	return worldPos, normal
}

// EvaluateField maps Displace over a slice of base positions, fanning the work
// out across the given worker pool in fixed-size chunks. Every vertex is
// independent, so the result is identical regardless of worker count or
// scheduling order. A nil pool evaluates serially, which the tests use to
// cross-check the parallel path.
//
// Parameters:
//   - pool: the worker pool to fan out on, or nil for serial evaluation
//   - waves: the validated wave set
//   - model: the 4x4 column-major model-to-world transform
//   - elapsedTime: simulation time in seconds
//   - positions: the base vertex positions in object space
//
// Returns:
//   - []DisplacedPoint: one entry per input position, in input order
func EvaluateField(pool worker.DynamicWorkerPool, waves WaveSet, model *[16]float32, elapsedTime float32, positions [][3]float32) []DisplacedPoint {
	out := make([]DisplacedPoint, len(positions))

	if pool == nil {
		for i, p := range positions {
			out[i].WorldPosition, out[i].Normal = Displace(waves, model, elapsedTime, p)
		}
		return out
	}

	// Per-call barrier: pool.Wait blocks until workers idle-exit, which is
	// unsuitable for frame-rate workloads, so a WaitGroup fences each field
	// evaluation instead (same pattern as the frame prep fan-out).
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(positions); start += fieldChunkSize {
		end := min(start+fieldChunkSize, len(positions))

		wg.Add(1)
		lo, hi := start, end
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					out[i].WorldPosition, out[i].Normal = Displace(waves, model, elapsedTime, positions[i])
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out
}
