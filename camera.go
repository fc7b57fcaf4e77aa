package gallery

// Camera is a fixed perspective camera looking down -Z at the plane layer.
// Every plane lies at z=0, so projection reduces to a per-axis scale about
// the screen center, recomputed whenever the window size changes.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Distance is the camera's distance from the plane layer in world units.
	Distance float64

	// CullEnabled skips planes whose projected rectangle lies outside the
	// window.
	CullEnabled bool

	viewport Viewport
	// cached projection: screen = (cx + x*sx, cy - y*sy)
	cx, cy float64
	sx, sy float64
	dirty  bool
}

// newCamera creates a Camera with the given field of view and distance. It has
// no viewport until Resize is called.
func newCamera(fov, distance float64) *Camera {
	return &Camera{
		FOV:         fov,
		Distance:    distance,
		CullEnabled: true,
		dirty:       true,
	}
}

// Resize recomputes the viewport for the given window size in pixels and
// returns it.
func (c *Camera) Resize(pixelWidth, pixelHeight int) Viewport {
	c.viewport = ComputeViewport(float64(pixelWidth), float64(pixelHeight), c.FOV, c.Distance)
	c.dirty = true
	return c.viewport
}

// Viewport returns the most recently computed viewport.
func (c *Camera) Viewport() Viewport {
	return c.viewport
}

func (c *Camera) computeProjection() {
	if !c.dirty {
		return
	}
	c.dirty = false
	vp := c.viewport
	c.cx = vp.PixelWidth / 2
	c.cy = vp.PixelHeight / 2
	if vp.Width == 0 || vp.Height == 0 {
		c.sx, c.sy = 0, 0
		return
	}
	c.sx, c.sy = vp.PixelsPerUnit()
}

// WorldToScreen converts a world point on the plane layer to screen pixels.
// World Y grows upward; screen Y grows downward.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeProjection()
	return c.cx + wx*c.sx, c.cy - wy*c.sy
}

// ScreenToWorld converts screen pixels to a world point on the plane layer.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeProjection()
	if c.sx == 0 || c.sy == 0 {
		return 0, 0
	}
	return (sx - c.cx) / c.sx, (c.cy - sy) / c.sy
}

// ScreenRect returns the screen-space rectangle of a plane centered at
// position with the given world scale.
func (c *Camera) ScreenRect(position, scale Vec2) Rect {
	x0, y0 := c.WorldToScreen(position.X-scale.X/2, position.Y+scale.Y/2)
	x1, y1 := c.WorldToScreen(position.X+scale.X/2, position.Y-scale.Y/2)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// VisibleBounds returns the window rectangle in screen pixels.
func (c *Camera) VisibleBounds() Rect {
	return Rect{Width: c.viewport.PixelWidth, Height: c.viewport.PixelHeight}
}

// shouldCull reports whether a plane is entirely off screen.
func (c *Camera) shouldCull(position, scale Vec2) bool {
	if !c.CullEnabled {
		return false
	}
	return !c.ScreenRect(position, scale).Intersects(c.VisibleBounds())
}
