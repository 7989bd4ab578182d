package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/swell-go/engine/ocean"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1280, cfg.Graphics.Width)
	assert.Equal(t, 720, cfg.Graphics.Height)
	assert.True(t, cfg.Graphics.VSync)

	assert.InDelta(t, 22, cfg.Camera.Radius, 1e-6)
	assert.InDelta(t, 64, cfg.Ocean.PlaneSize, 1e-6)
	assert.Equal(t, 256, cfg.Ocean.PlaneResolution)
	assert.Equal(t, "info", cfg.Logging.Level)

	// The default wave set must pass its own validation.
	ws, err := cfg.Ocean.WaveSet()
	assert.NoError(t, err)
	assert.Equal(t, 5, ws.Count())
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadNoFileFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default().Graphics, cfg.Graphics)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.yaml")
	body := `
graphics:
  width: 1920
  height: 1080
  vsync: false
camera:
  radius: 40
ocean:
  plane_size: 128
  waves:
    - length: 12
      amplitude: 0.2
      steepness: 0.5
      direction: [3, 4]
`
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, 1920, cfg.Graphics.Width)
	assert.Equal(t, 1080, cfg.Graphics.Height)
	assert.False(t, cfg.Graphics.VSync)
	assert.InDelta(t, 40, cfg.Camera.Radius, 1e-6)
	assert.InDelta(t, 128, cfg.Ocean.PlaneSize, 1e-6)

	// Untouched sections keep their defaults.
	assert.InDelta(t, 0.1, cfg.Camera.NearPlane, 1e-6)
	assert.Equal(t, "info", cfg.Logging.Level)

	// The file's wave list replaces the default set entirely.
	assert.Len(t, cfg.Ocean.Waves, 1)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("graphics: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWaveSetNormalizesDirections(t *testing.T) {
	o := OceanConfig{
		Waves: []WaveConfig{
			{Length: 12, Amplitude: 0.2, Steepness: 0.5, Direction: [2]float32{3, 4}},
		},
	}

	ws, err := o.WaveSet()
	assert.NoError(t, err)

	dir := ws.Waves()[0].Direction
	assert.InDelta(t, 0.6, dir[0], 1e-5)
	assert.InDelta(t, 0.8, dir[1], 1e-5)
	assert.InDelta(t, 1, math32.Hypot(dir[0], dir[1]), 1e-5)
}

func TestWaveSetRejectsInvalidWaves(t *testing.T) {
	tests := []struct {
		name string
		wave WaveConfig
	}{
		{name: "zero direction", wave: WaveConfig{Length: 12, Amplitude: 0.2, Steepness: 0.5}},
		{name: "zero length", wave: WaveConfig{Amplitude: 0.2, Steepness: 0.5, Direction: [2]float32{1, 0}}},
		{name: "no waves", wave: WaveConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o OceanConfig
			if tt.name != "no waves" {
				o.Waves = []WaveConfig{tt.wave}
			}
			_, err := o.WaveSet()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ocean.ErrInvalidParameter))
		})
	}
}
