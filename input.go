package gallery

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// processInput consumes one injected event if any is queued, otherwise polls
// the live wheel and cursor when the scene runs inside a window.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.liveInput {
		return
	}

	wx, wy := ebiten.Wheel()
	if wx != 0 || wy != 0 {
		x, y := s.normalizeWheel(wx, wy)
		s.Scroll(x, y)
	}

	cx, cy := ebiten.CursorPosition()
	s.movePointer(float64(cx), float64(cy))
}

// normalizeWheel converts ebiten wheel offsets to browser-style pixel deltas:
// Ebitengine reports positive Y when the wheel turns away from the user, which
// a browser reports as a negative deltaY.
func (s *Scene) normalizeWheel(wx, wy float64) (pixelX, pixelY float64) {
	step := s.cfg.WheelPixelStep
	return -wx * step, -wy * step
}

// movePointer records the pointer position and fires hover enter/leave on
// the plane under it.
func (s *Scene) movePointer(x, y float64) {
	s.pointerX, s.pointerY = x, y
	hit := s.PlaneAt(x, y)
	if hit == s.hovered {
		return
	}
	if s.hovered != nil {
		s.hovered.SetHovering(false)
		s.emit(EventHoverLeave, s.hovered, nil)
	}
	s.hovered = hit
	if hit != nil {
		hit.SetHovering(true)
		s.emit(EventHoverEnter, hit, nil)
	}
}

// Hovered returns the plane under the pointer, or nil.
func (s *Scene) Hovered() *Plane {
	return s.hovered
}

// PlaneAt returns the plane under the screen point (x, y), or nil. The point
// is unprojected onto the plane layer first. Empty planes are not hit.
func (s *Scene) PlaneAt(x, y float64) *Plane {
	if s.width == 0 || s.height == 0 {
		return nil
	}
	// The cursor is still reported while it sits outside the window.
	if !s.camera.VisibleBounds().Contains(x, y) {
		return nil
	}
	wx, wy := s.camera.ScreenToWorld(x, y)
	for _, p := range s.planes {
		if p.textureState != TextureLoaded {
			continue
		}
		if p.contains(wx, wy) {
			return p
		}
	}
	return nil
}
