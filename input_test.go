package gallery

import "testing"

func TestNormalizeWheel(t *testing.T) {
	s := newTestScene(t, 1)
	// Ebitengine reports +1 for a wheel turned away from the user.
	x, y := s.normalizeWheel(0, 1)
	if x != 0 || y != -40 {
		t.Errorf("normalizeWheel(0, 1) = (%f, %f), want (0, -40)", x, y)
	}
	_, dir := WheelSpeed(x, y, 100, 0.015)
	if dir != DirectionDown {
		t.Errorf("wheel away from user = %v, want down", dir)
	}

	x, y = s.normalizeWheel(-0.5, -3)
	if x != 20 || y != 120 {
		t.Errorf("normalizeWheel(-0.5, -3) = (%f, %f), want (20, 120)", x, y)
	}
}

func TestPlaneAtBeforeResize(t *testing.T) {
	s, err := NewScene(testManifest(1), nil, DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Planes()[0].textureState = TextureLoaded
	if s.PlaneAt(0, 0) != nil {
		t.Error("PlaneAt before the first resize should be nil")
	}
}

func TestMovePointerSwitchesHover(t *testing.T) {
	s := newTestScene(t, 2)
	a, b := s.Planes()[0], s.Planes()[1]
	a.textureState = TextureLoaded
	b.textureState = TextureLoaded

	s.movePointer(750, 750)
	if s.Hovered() != a || !a.Hovering {
		t.Fatal("plane 0 should be hovered at the center")
	}

	// Plane 1 sits one slot below the center.
	r := s.Camera().ScreenRect(b.Position, b.Scale)
	s.movePointer(r.X+r.Width/2, r.Y+r.Height/2)
	if s.Hovered() != b || !b.Hovering || a.Hovering {
		t.Errorf("hover should move to plane 1: a=%v b=%v", a.Hovering, b.Hovering)
	}
}

func TestHoverDimReachesUniform(t *testing.T) {
	s := newTestScene(t, 1)
	p := s.Planes()[0]
	p.textureState = TextureLoaded
	for i := 0; i < 20; i++ {
		s.Step(0.05)
	}
	s.InjectPointer(750, 750)
	s.Step(0.05)
	a, _ := p.Uniforms()[UniformAlpha].(float32)
	if !approxEqual(float64(a), 0.6, 1e-6) {
		t.Errorf("Alpha uniform = %f, want 0.6 while hovered", a)
	}
}

func TestPlaneAtUnprojectsPointer(t *testing.T) {
	s := newTestScene(t, 2)
	a, b := s.Planes()[0], s.Planes()[1]
	a.textureState = TextureLoaded
	b.textureState = TextureLoaded

	// Plane 0 covers x 250..1250 and y 500..1000 in a 1500x1500 window.
	if s.PlaneAt(260, 510) != a {
		t.Error("point just inside the top-left corner should hit plane 0")
	}
	if s.PlaneAt(240, 750) != nil {
		t.Error("point left of plane 0 should miss")
	}

	// Plane 1 runs past the bottom edge of the window.
	r := s.Camera().ScreenRect(b.Position, b.Scale)
	if r.Y+r.Height <= 1500 {
		t.Fatalf("plane 1 rect %+v should extend below the window", r)
	}
	if s.PlaneAt(750, 1490) != b {
		t.Error("visible part of plane 1 should be hit")
	}
	if s.PlaneAt(750, 1510) != nil {
		t.Error("pointer below the window should not hit plane 1")
	}
}
