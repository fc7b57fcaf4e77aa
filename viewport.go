package gallery

import "math"

// Viewport is the world-space extent visible through the camera at the plane
// depth, together with the pixel size it was derived from. It is an immutable
// snapshot; a resize produces a new value.
type Viewport struct {
	PixelWidth, PixelHeight float64
	Width, Height           float64
}

// ComputeViewport derives the visible world extent for a perspective camera
// with vertical field of view fovDegrees placed distance units from the
// z=0 plane. pixelHeight must be non-zero.
func ComputeViewport(pixelWidth, pixelHeight, fovDegrees, distance float64) Viewport {
	fov := fovDegrees * (math.Pi / 180)
	h := 2 * math.Tan(fov/2) * distance
	return Viewport{
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
		Width:       h * (pixelWidth / pixelHeight),
		Height:      h,
	}
}

// Aspect returns PixelWidth / PixelHeight.
func (v Viewport) Aspect() float64 {
	return v.PixelWidth / v.PixelHeight
}

// PixelsPerUnit returns how many screen pixels one world unit covers on each
// axis.
func (v Viewport) PixelsPerUnit() (x, y float64) {
	return v.PixelWidth / v.Width, v.PixelHeight / v.Height
}

// Layout maps a pixel footprint proportionally into world units so that a
// plane of the returned scale covers the same share of the window as an
// element of the given pixel size. Planes are centered; the vertical
// position is owned by the scroll controller.
func Layout(vp Viewport, content Vec2) (scale, position Vec2) {
	scale = Vec2{
		X: vp.Width * content.X / vp.PixelWidth,
		Y: vp.Height * content.Y / vp.PixelHeight,
	}
	return scale, Vec2{}
}
