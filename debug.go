package gallery

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats accumulates timing and draw metrics between log lines.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime     time.Duration
	drawTime       time.Duration
	frames         int
	planesDrawn    int
	texturesLoaded int
}

// debugLogInterval is the number of drawn frames between stat lines.
const debugLogInterval = 60

// debugf prints a debug line to stderr.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[gallery] "+format+"\n", args...)
}

// debugFrame prints averaged stats every debugLogInterval frames and resets
// the frame counters. texturesLoaded is cumulative.
func (s *Scene) debugFrame() {
	st := &s.stats
	if st.frames < debugLogInterval {
		return
	}
	n := time.Duration(st.frames)
	s.debugf("update: %v | draw: %v | planes drawn: %.1f/%d | textures: %d/%d",
		st.updateTime/n, st.drawTime/n,
		float64(st.planesDrawn)/float64(st.frames), len(s.planes),
		st.texturesLoaded, len(s.planes))
	speed, dir := s.Speed()
	s.debugf("active: %d | speed: %.3f %s | hovered: %s",
		s.ActiveIndex(), speed, dir, hoveredTitle(s.hovered))
	st.updateTime, st.drawTime = 0, 0
	st.frames, st.planesDrawn = 0, 0
}

func hoveredTitle(p *Plane) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d %q", p.Index, p.Title)
}

// drawFPS prints the current FPS and TPS in the top-right corner.
func drawFPS(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, w-100, 8)
}
