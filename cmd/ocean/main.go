package main

import (
	"flag"
	"os"

	"github.com/Carmen-Shannon/swell-go/common"
	"github.com/Carmen-Shannon/swell-go/config"
	"github.com/Carmen-Shannon/swell-go/engine"
	"github.com/Carmen-Shannon/swell-go/engine/camera"
	"github.com/Carmen-Shannon/swell-go/engine/ocean"
	"github.com/Carmen-Shannon/swell-go/engine/renderer"
	"github.com/Carmen-Shannon/swell-go/engine/scene"
	"github.com/Carmen-Shannon/swell-go/engine/window"
	"github.com/Carmen-Shannon/swell-go/logger"
	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to ./ocean.yaml)")
	profile := flag.Bool("profile", false, "log frame statistics once per second")
	software := flag.Bool("software", false, "force the software fallback GPU adapter")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger isn't up yet; write directly and bail.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	waves, err := cfg.Ocean.WaveSet()
	if err != nil {
		logger.Fatal("invalid wave configuration", zap.Error(err))
	}

	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(*profile),
		engine.WithTickRate(60),
		engine.WithRenderFrameLimit(float64(cfg.Graphics.FPSLimit)),
		engine.WithWindow(window.NewWindow(
			window.WithTitle("Swell"),
			window.WithWidth(cfg.Graphics.Width),
			window.WithHeight(cfg.Graphics.Height),
		)),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.Graphics.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(*software),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	degToRad := math32.Pi / 180.0
	cam := camera.NewCamera(
		camera.WithFov(cfg.Camera.FieldOfViewY*degToRad),
		camera.WithAspect(float32(eng.Window().Width())/float32(eng.Window().Height())),
		camera.WithNear(cfg.Camera.NearPlane),
		camera.WithFar(cfg.Camera.FarPlane),
		camera.WithController(camera.NewCameraController(
			camera.WithRadius(cfg.Camera.Radius),
			camera.WithAzimuth(cfg.Camera.AzimuthDeg*degToRad),
			camera.WithElevation(cfg.Camera.ElevationDeg*degToRad),
			camera.WithTarget(cfg.Camera.TargetX, cfg.Camera.TargetY, cfg.Camera.TargetZ),
			camera.WithMouseSensitivity(cfg.Camera.OrbitSpeed),
			camera.WithPanSpeed(cfg.Camera.PanSpeed),
			camera.WithZoomSpeed(cfg.Camera.ZoomSpeed),
		)),
	)

	// ── Ocean surface + Scene ───────────────────────────────────────────
	surface := ocean.NewSurface(
		ocean.WithPlaneSize(cfg.Ocean.PlaneSize),
		ocean.WithPlaneResolution(cfg.Ocean.PlaneResolution),
		ocean.WithWaveSet(waves),
	)

	sc := scene.NewScene("ocean", cam, r, surface,
		scene.WithActive(true),
	)
	eng.AddScene(0, sc)

	setupInput(eng, cam)

	logger.Info("starting ocean renderer",
		zap.Int("width", eng.Window().Width()),
		zap.Int("height", eng.Window().Height()),
		zap.Int("waves", waves.Count()),
		zap.Bool("vsync", cfg.Graphics.VSync),
	)
	eng.Run()
}

// setupInput wires camera controls: WASD planar movement, left-mouse drag
// orbit, and scroll zoom.
//
// Parameters:
//   - eng: the engine instance providing window callbacks and tick
//   - cam: the camera to control
func setupInput(eng engine.Engine, cam camera.Camera) {
	keyState := make(map[uint32]bool)

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		keyState[keyCode] = true
	})

	eng.Window().SetKeyUpCallback(func(keyCode uint32) {
		keyState[keyCode] = false
	})

	var dragging bool
	var lastX, lastY int32

	eng.Window().SetLeftMouseDownCallback(func(x, y int32) {
		dragging = true
		lastX, lastY = x, y
	})

	eng.Window().SetLeftMouseUpCallback(func(_, _ int32) {
		dragging = false
	})

	eng.Window().SetMouseMoveCallback(func(x, y int32) {
		if !dragging {
			return
		}
		dx := float32(x - lastX)
		dy := float32(y - lastY)
		cam.Controller().Orbit(dx, dy)
		lastX, lastY = x, y
	})

	eng.Window().SetScrollCallback(func(delta float32) {
		cam.Controller().Zoom(delta)
	})

	eng.SetTickCallback(func(_ float32) {
		if keyState[common.KeyW] {
			cam.Controller().PanForward(1)
		}
		if keyState[common.KeyS] {
			cam.Controller().PanForward(-1)
		}
		if keyState[common.KeyA] {
			cam.Controller().PanRight(-1)
		}
		if keyState[common.KeyD] {
			cam.Controller().PanRight(1)
		}
	})
}
