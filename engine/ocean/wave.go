// package ocean implements the Gerstner wave surface: wave parameter sets,
// the per-vertex displacement evaluator, the GPU uniform layout that carries
// wave state to the vertex stage each frame, and a CPU reference of the
// fragment shading model.
package ocean

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// MaxWaves is the fixed capacity of the wave array in the GPU uniform buffer.
// The WGSL uniform declares array<Wave, 8>, so a WaveSet can never hold more.
const MaxWaves = 8

// ErrInvalidParameter is returned (wrapped, with field context) when a wave
// descriptor fails construction-time validation. Callers may reject or clamp
// and retry; an invalid descriptor is never silently accepted.
var ErrInvalidParameter = errors.New("invalid wave parameter")

// directionTolerance is how far a direction's length may deviate from 1.
// Directions must be pre-normalized by the caller; the evaluator does not
// renormalize.
const directionTolerance = 1e-3

// Wave describes a single Gerstner wave component.
type Wave struct {
	// Length is the wavelength in world units. Must be > 0.
	Length float32
	// Amplitude is the wave height from baseline to crest. Must be > 0.
	Amplitude float32
	// Steepness controls how sharply displacement concentrates at crests,
	// in [0, 1]. 0 produces a pure sine wave with no horizontal motion.
	Steepness float32
	// Direction is the horizontal (XZ plane) travel direction. Must be unit
	// length within 1e-3.
	Direction [2]float32
}

// validate checks a single descriptor, reporting the wave's index in any error.
func (w Wave) validate(index int) error {
	if w.Length <= 0 {
		return fmt.Errorf("%w: wave %d: length %v must be > 0", ErrInvalidParameter, index, w.Length)
	}
	if w.Amplitude <= 0 {
		return fmt.Errorf("%w: wave %d: amplitude %v must be > 0", ErrInvalidParameter, index, w.Amplitude)
	}
	if w.Steepness < 0 || w.Steepness > 1 {
		return fmt.Errorf("%w: wave %d: steepness %v must be in [0, 1]", ErrInvalidParameter, index, w.Steepness)
	}
	length := math32.Hypot(w.Direction[0], w.Direction[1])
	if math32.Abs(length-1) > directionTolerance {
		return fmt.Errorf("%w: wave %d: direction (%v, %v) has length %v, must be unit",
			ErrInvalidParameter, index, w.Direction[0], w.Direction[1], length)
	}
	return nil
}

// WaveSet is an ordered, immutable collection of validated wave descriptors
// plus the derived amplitude sum used as the shading normalization divisor.
// The order is the superposition order: mathematically commutative, but fixed
// so that packing and iteration are deterministic.
type WaveSet struct {
	waves        []Wave
	amplitudeSum float32
}

// NewWaveSet validates the given descriptors and constructs a WaveSet.
// Between 1 and MaxWaves descriptors are required; every violation wraps
// ErrInvalidParameter. The descriptors are copied, so the caller's slice may
// be reused.
//
// Parameters:
//   - waves: the wave descriptors, in superposition order
//
// Returns:
//   - WaveSet: the validated set
//   - error: an error wrapping ErrInvalidParameter if validation fails
func NewWaveSet(waves ...Wave) (WaveSet, error) {
	if len(waves) == 0 {
		return WaveSet{}, fmt.Errorf("%w: at least one wave is required", ErrInvalidParameter)
	}
	if len(waves) > MaxWaves {
		return WaveSet{}, fmt.Errorf("%w: %d waves exceeds the maximum of %d", ErrInvalidParameter, len(waves), MaxWaves)
	}

	var sum float32
	for i, w := range waves {
		if err := w.validate(i); err != nil {
			return WaveSet{}, err
		}
		sum += w.Amplitude
	}

	ws := WaveSet{
		waves:        make([]Wave, len(waves)),
		amplitudeSum: sum,
	}
	copy(ws.waves, waves)
	return ws, nil
}

// Waves returns the descriptors in superposition order. The returned slice is
// a copy; mutating it does not affect the set.
//
// Returns:
//   - []Wave: a copy of the descriptors
func (ws WaveSet) Waves() []Wave {
	cp := make([]Wave, len(ws.waves))
	copy(cp, ws.waves)
	return cp
}

// Count returns the number of active waves in the set.
//
// Returns:
//   - int: the wave count (0 for a zero-value WaveSet)
func (ws WaveSet) Count() int {
	return len(ws.waves)
}

// AmplitudeSum returns the sum of all wave amplitudes. It is strictly positive
// for any set built by NewWaveSet and zero for the zero-value (empty) set;
// consumers dividing by it must short-circuit the empty case.
//
// Returns:
//   - float32: the amplitude sum
func (ws WaveSet) AmplitudeSum() float32 {
	return ws.amplitudeSum
}
