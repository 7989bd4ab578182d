// Package config handles application configuration loading and management.
package config

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/swell-go/engine/ocean"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Ocean    OceanConfig    `yaml:"ocean"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	VSync    bool `yaml:"vsync"`
	FPSLimit int  `yaml:"fps_limit"` // 0 means uncapped (or vsync-paced)
}

// CameraConfig holds the initial orbit camera placement.
type CameraConfig struct {
	Radius       float32 `yaml:"radius"`
	AzimuthDeg   float32 `yaml:"azimuth_deg"`
	ElevationDeg float32 `yaml:"elevation_deg"`
	FieldOfViewY float32 `yaml:"fov_y_deg"`
	NearPlane    float32 `yaml:"near_plane"`
	FarPlane     float32 `yaml:"far_plane"`
	TargetX      float32 `yaml:"target_x"`
	TargetY      float32 `yaml:"target_y"`
	TargetZ      float32 `yaml:"target_z"`
	OrbitSpeed   float32 `yaml:"orbit_speed"`
	PanSpeed     float32 `yaml:"pan_speed"`
	ZoomSpeed    float32 `yaml:"zoom_speed"`
}

// WaveConfig describes one Gerstner wave in the configuration file. Direction
// is normalized during Load, so config files may use any non-zero vector.
type WaveConfig struct {
	Length    float32    `yaml:"length"`
	Amplitude float32    `yaml:"amplitude"`
	Steepness float32    `yaml:"steepness"`
	Direction [2]float32 `yaml:"direction"`
}

// OceanConfig holds the surface geometry and the wave set.
type OceanConfig struct {
	PlaneSize       float32      `yaml:"plane_size"`
	PlaneResolution int          `yaml:"plane_resolution"`
	Waves           []WaveConfig `yaml:"waves"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values, including the
// standard five-wave open-ocean set.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
		},
		Camera: CameraConfig{
			Radius:       22,
			AzimuthDeg:   45,
			ElevationDeg: 30,
			FieldOfViewY: 60,
			NearPlane:    0.1,
			FarPlane:     500,
			OrbitSpeed:   0.005,
			PanSpeed:     0.02,
			ZoomSpeed:    1.5,
		},
		Ocean: OceanConfig{
			PlaneSize:       64,
			PlaneResolution: 256,
			Waves: []WaveConfig{
				{Length: 8, Amplitude: 0.10, Steepness: 1.0, Direction: [2]float32{0.6, 0.8}},
				{Length: 14, Amplitude: 0.18, Steepness: 0.8, Direction: [2]float32{1, 0.3}},
				{Length: 22, Amplitude: 0.25, Steepness: 0.6, Direction: [2]float32{-0.4, 1}},
				{Length: 5, Amplitude: 0.05, Steepness: 0.9, Direction: [2]float32{0.2, -1}},
				{Length: 35, Amplitude: 0.30, Steepness: 0.4, Direction: [2]float32{1, 1}},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// WaveSet normalizes each configured direction and builds the validated
// ocean.WaveSet. Zero-length directions fail validation downstream rather
// than being silently replaced.
//
// Returns:
//   - ocean.WaveSet: the validated wave set
//   - error: an error wrapping ocean.ErrInvalidParameter if any descriptor is invalid
func (o OceanConfig) WaveSet() (ocean.WaveSet, error) {
	waves := make([]ocean.Wave, len(o.Waves))
	for i, w := range o.Waves {
		dir := w.Direction
		if length := math32.Hypot(dir[0], dir[1]); length > 0 {
			dir[0] /= length
			dir[1] /= length
		}
		waves[i] = ocean.Wave{
			Length:    w.Length,
			Amplitude: w.Amplitude,
			Steepness: w.Steepness,
			Direction: dir,
		}
	}
	return ocean.NewWaveSet(waves...)
}
