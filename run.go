package gallery

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the tick rate. Zero keeps Ebitengine's default (60);
	// ebiten.SyncWithFPS ticks once per frame with measured deltas.
	TPS        int
	ShowFPS    bool
	Fullscreen bool
	// ExitWhenScriptDone ends Run once an attached TestRunner finishes.
	ExitWhenScriptDone bool
}

// game adapts a Scene to ebiten.Game and adds the window shortcuts:
// Q or Escape quits, F11 toggles fullscreen.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.cfg.ExitWhenScriptDone && g.scene.testRunner != nil && g.scene.testRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}

// Run opens a resizable window and runs the scene until the window closes or
// the user quits. A clean quit returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 800
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.TPS != 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	scene.liveInput = true
	scene.ShowFPS = scene.ShowFPS || cfg.ShowFPS
	scene.Resize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
