package gallery

// Config holds the tuning values for layout, scrolling and animation. Start
// from DefaultConfig and override individual fields.
type Config struct {
	// Camera
	FOV      float64 // vertical field of view in degrees
	Distance float64 // camera distance from the plane layer

	// Layout. An item is ItemWidth x ItemHeight pixels when the window is
	// ReferenceHeight pixels tall and scales with the window height.
	ItemWidth       float64
	ItemHeight      float64
	ReferenceHeight float64
	Padding         float64 // world units between consecutive planes

	// Scrolling
	Damping        float64 // per-second approach rate toward the target
	MaxWheelDelta  float64 // wheel deltas are clamped to this many pixels
	SpeedFactor    float64 // pixels -> world units per wheel event
	WheelPixelStep float64 // pixels per unit reported by ebiten.Wheel
	SnapDuration   float32
	SnapDelay      float32

	// Focus fade of the centered plane
	IdleAlpha     float64
	FocusAlpha    float64
	FocusDuration float32

	// HoverDim multiplies the plane alpha while the pointer is over it.
	HoverDim float64

	// Plane geometry subdivision
	WidthSegments  int
	HeightSegments int

	ClearColor Color
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		FOV:      45,
		Distance: 20,

		ItemWidth:       1000,
		ItemHeight:      500,
		ReferenceHeight: 1500,
		Padding:         1,

		Damping:        5.5,
		MaxWheelDelta:  100,
		SpeedFactor:    0.015,
		WheelPixelStep: 40,
		SnapDuration:   0.4,
		SnapDelay:      0.1,

		IdleAlpha:     0.5,
		FocusAlpha:    1,
		FocusDuration: 0.5,

		HoverDim: 0.6,

		WidthSegments:  100,
		HeightSegments: 50,

		ClearColor: Color{R: 0.06, G: 0.06, B: 0.07, A: 1},
	}
}

// contentSize returns the item's pixel footprint for a window pixelHeight
// tall.
func (c Config) contentSize(pixelHeight float64) Vec2 {
	s := pixelHeight / c.ReferenceHeight
	return Vec2{X: c.ItemWidth * s, Y: c.ItemHeight * s}
}
