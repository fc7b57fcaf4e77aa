package gallery

import "testing"

func newTestCamera() *Camera {
	c := newCamera(45, 20)
	c.Resize(1500, 1500)
	return c
}

func TestCameraWorldToScreenCenter(t *testing.T) {
	c := newTestCamera()
	sx, sy := c.WorldToScreen(0, 0)
	if sx != 750 || sy != 750 {
		t.Errorf("WorldToScreen(0,0) = (%f, %f), want (750, 750)", sx, sy)
	}
}

func TestCameraYUp(t *testing.T) {
	c := newTestCamera()
	_, above := c.WorldToScreen(0, 1)
	_, below := c.WorldToScreen(0, -1)
	if !(above < 750 && below > 750) {
		t.Errorf("world +Y should map above center: above=%f below=%f", above, below)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := newTestCamera()
	points := [][2]float64{{0, 0}, {3.5, -2}, {-8, 8}, {0.001, 100}}
	for _, p := range points {
		sx, sy := c.WorldToScreen(p[0], p[1])
		wx, wy := c.ScreenToWorld(sx, sy)
		if !approxEqual(wx, p[0], 1e-9) || !approxEqual(wy, p[1], 1e-9) {
			t.Errorf("round trip %v = (%f, %f)", p, wx, wy)
		}
	}
}

func TestCameraScreenRectOfCenteredPlane(t *testing.T) {
	c := newTestCamera()
	vp := c.Viewport()
	scale, _ := Layout(vp, Vec2{X: 1000, Y: 500})
	r := c.ScreenRect(Vec2{}, scale)
	want := Rect{X: 250, Y: 500, Width: 1000, Height: 500}
	if !approxEqual(r.X, want.X, 1e-6) || !approxEqual(r.Y, want.Y, 1e-6) ||
		!approxEqual(r.Width, want.Width, 1e-6) || !approxEqual(r.Height, want.Height, 1e-6) {
		t.Errorf("ScreenRect = %+v, want %+v", r, want)
	}
}

func TestCameraCulling(t *testing.T) {
	c := newTestCamera()
	scale := Vec2{X: 11, Y: 5.5}
	if c.shouldCull(Vec2{}, scale) {
		t.Error("centered plane should not be culled")
	}
	far := Vec2{Y: 40}
	if !c.shouldCull(far, scale) {
		t.Error("plane far above the window should be culled")
	}
	c.CullEnabled = false
	if c.shouldCull(far, scale) {
		t.Error("culling disabled should never cull")
	}
}

func TestCameraNoViewport(t *testing.T) {
	c := newCamera(45, 20)
	wx, wy := c.ScreenToWorld(10, 10)
	if wx != 0 || wy != 0 {
		t.Errorf("ScreenToWorld without viewport = (%f, %f), want origin", wx, wy)
	}
}
