package gallery

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the camera, the planes and the
// label renderer. It forwards resize and wheel input to every plane, ticks
// them once per Update and draws them in one pass.
type Scene struct {
	cfg    Config
	camera *Camera
	planes []*Plane
	labels LabelRenderer

	// ClearColor fills the screen before the planes are drawn.
	ClearColor Color
	// ShowFPS draws an FPS/TPS readout in the top-right corner.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	width, height int
	speed         float64
	direction     Direction
	dt            float64
	lastTick      time.Time
	now           func() time.Time

	// Input state
	liveInput   bool // poll ebiten input; false for headless use
	hovered     *Plane
	pointerX    float64
	pointerY    float64
	injectQueue []syntheticEvent

	// Diagnostics
	debug           bool
	stats           debugStats
	screenshotQueue []string
	testRunner      *TestRunner
	shaderErr       error

	events     EventSink
	updateFunc func() error
}

// NewScene creates one plane per manifest entry, hands each title to labels
// (which may be nil) and starts loading every image from assets in the
// background. A nil assets leaves every plane empty until SetImage is called.
func NewScene(m *Manifest, assets fs.FS, cfg Config, labels LabelRenderer) (*Scene, error) {
	if m == nil {
		return nil, fmt.Errorf("gallery: nil manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		cfg:           cfg,
		camera:        newCamera(cfg.FOV, cfg.Distance),
		labels:        labels,
		ClearColor:    cfg.ClearColor,
		ScreenshotDir: "screenshots",
		dt:            FrameTime,
		now:           time.Now,
	}
	total := len(m.Planes)
	s.planes = make([]*Plane, total)
	for i, e := range m.Planes {
		p := NewPlane(i, total, e, cfg)
		if assets != nil {
			p.setPending(loadTextureAsync(assets, e.Src))
		}
		s.planes[i] = p
		if labels != nil {
			labels.Add(e.Title)
		}
	}
	return s, nil
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Planes returns the planes in manifest order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Planes() []*Plane {
	return s.planes
}

// Labels returns the label renderer passed to NewScene.
func (s *Scene) Labels() LabelRenderer {
	return s.labels
}

// Viewport returns the current viewport.
func (s *Scene) Viewport() Viewport {
	return s.camera.Viewport()
}

// Size returns the window size in pixels of the last Resize.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Speed returns the speed and direction of the most recent wheel event.
func (s *Scene) Speed() (float64, Direction) {
	return s.speed, s.direction
}

// SetUpdateFunc registers a callback invoked at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and draw stats are logged to stderr once per second of ticks.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize recomputes the viewport for a window of width x height pixels and
// lays out every plane. Zero sizes (a minimized window) are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	vp := s.camera.Resize(width, height)
	for _, p := range s.planes {
		p.Resize(vp)
	}
	if s.debug {
		s.debugf("resize %dx%d -> world %.3fx%.3f", width, height, vp.Width, vp.Height)
	}
}

// WheelSpeed converts a normalized wheel delta in pixels into a bounded scroll
// speed and direction: speed = min(maxDelta, max(|x|, |y|)) * factor, Up when
// pixelY > 0.
func WheelSpeed(pixelX, pixelY, maxDelta, factor float64) (float64, Direction) {
	relative := math.Min(maxDelta, math.Max(math.Abs(pixelX), math.Abs(pixelY)))
	dir := DirectionDown
	if pixelY > 0 {
		dir = DirectionUp
	}
	return relative * factor, dir
}

// Scroll handles one wheel event with deltas in pixels and forwards the
// resulting speed and direction to every plane.
func (s *Scene) Scroll(pixelX, pixelY float64) {
	s.speed, s.direction = WheelSpeed(pixelX, pixelY, s.cfg.MaxWheelDelta, s.cfg.SpeedFactor)
	for _, p := range s.planes {
		p.Scroll(s.speed, s.direction, s.dt)
	}
}

// ActiveIndex returns the index of the centered plane, or -1 while the
// gallery is between slots.
func (s *Scene) ActiveIndex() int {
	for _, p := range s.planes {
		if p.Active {
			return p.Index
		}
	}
	return -1
}

// Update advances the scene by one tick. The tick length is 1/TPS, or the
// measured wall time when TPS is synced to the frame rate.
func (s *Scene) Update() error {
	var dt float64
	if tps := ebiten.TPS(); tps > 0 {
		dt = 1.0 / float64(tps)
	} else {
		dt = s.measureTick()
	}
	return s.Step(dt)
}

// measureTick returns the wall time since the previous call, capped at 0.1s
// so a stalled window does not fling the gallery. The first call returns
// FrameTime.
func (s *Scene) measureTick() float64 {
	t := s.now()
	defer func() { s.lastTick = t }()
	if s.lastTick.IsZero() {
		return FrameTime
	}
	return math.Min(t.Sub(s.lastTick).Seconds(), 0.1)
}

// Step advances the scene by dt seconds: finished image loads are applied,
// one injected or polled input batch is processed, then every plane is
// ticked and the labels learn the active index.
func (s *Scene) Step(dt float64) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.dt = dt

	for _, p := range s.planes {
		loaded, err := p.applyPending()
		if err != nil {
			s.logf("%v", err)
			s.emit(EventTextureFailed, p, err)
			continue
		}
		if loaded {
			s.stats.texturesLoaded++
			if s.debug {
				s.debugf("loaded %s (%.0fx%.0f)", p.Src, p.imageSize.X, p.imageSize.Y)
			}
			s.emit(EventTextureLoaded, p, nil)
		}
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	for _, p := range s.planes {
		wasActive := p.Active
		p.Update(dt)
		switch {
		case p.Active && !wasActive:
			s.emit(EventActivate, p, nil)
		case !p.Active && wasActive:
			s.emit(EventDeactivate, p, nil)
		}
	}
	if al, ok := s.labels.(activeLabeler); ok {
		al.SetActive(s.ActiveIndex())
	}

	if s.debug {
		s.stats.updateTime += time.Since(t0)
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw clears screen and renders every loaded, visible plane, then the labels
// and overlays.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.toRGBA())

	shader, err := ensurePlaneShader()
	if err != nil && s.shaderErr == nil {
		s.shaderErr = err
		s.logf("%v", err)
	}
	drawn := 0
	for _, p := range s.planes {
		if p.draw(screen, s.camera, shader) {
			drawn++
		}
	}

	if ld, ok := s.labels.(labelDrawer); ok {
		ld.Draw(screen)
	}
	if s.ShowFPS {
		drawFPS(screen)
	}
	s.flushScreenshots(screen)

	if s.debug {
		s.stats.drawTime += time.Since(t0)
		s.stats.planesDrawn += drawn
		s.stats.frames++
		s.debugFrame()
	}
}

// Layout implements the ebiten.Game layout contract: the logical screen
// always matches the window, and any change is forwarded to Resize.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// logf reports a problem to stderr regardless of debug mode.
func (s *Scene) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[gallery] "+format+"\n", args...)
}
