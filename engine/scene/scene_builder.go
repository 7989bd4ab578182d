package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithProbeWorkers sets the number of worker goroutines used for CPU
// displacement queries via Probe. Defaults to runtime.NumCPU()-1.
// Higher values help with large probe grids; lower values reduce scheduling
// overhead when probes are small or rare.
//
// Parameters:
//   - n: the number of probe workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithProbeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.probeWorkers = n
	}
}
