package ocean

// SurfaceBuilderOption is a functional option for configuring a Surface.
type SurfaceBuilderOption func(*surfaceImpl)

// WithPlaneSize sets the world-space edge length of the water plane.
//
// Parameters:
//   - size: edge length in world units
//
// Returns:
//   - SurfaceBuilderOption: functional option to set the plane size
func WithPlaneSize(size float32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		if size > 0 {
			s.planeSize = size
		}
	}
}

// WithPlaneResolution sets the number of grid cells along each edge of the
// water plane. Higher resolutions resolve shorter wavelengths at the cost of
// vertex count.
//
// Parameters:
//   - resolution: cells per edge
//
// Returns:
//   - SurfaceBuilderOption: functional option to set the plane resolution
func WithPlaneResolution(resolution int) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		if resolution > 0 {
			s.planeResolution = resolution
		}
	}
}

// WithWaveSet sets the initial wave set.
//
// Parameters:
//   - ws: the validated wave set to start with
//
// Returns:
//   - SurfaceBuilderOption: functional option to set the wave set
func WithWaveSet(ws WaveSet) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.waveSet = ws
	}
}

// WithRamp sets the height-to-color ramp used for the water gradient texture.
//
// Parameters:
//   - ramp: the ramp to upload as the 1D gradient texture
//
// Returns:
//   - SurfaceBuilderOption: functional option to set the ramp
func WithRamp(ramp *Ramp) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		if ramp != nil {
			s.ramp = ramp
		}
	}
}

// WithModel sets the initial model-to-world transform.
//
// Parameters:
//   - model: the model matrix (column-major)
//
// Returns:
//   - SurfaceBuilderOption: functional option to set the model matrix
func WithModel(model [16]float32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.model = model
	}
}
