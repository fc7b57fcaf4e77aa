package gallery

import (
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},   // top-left corner
		{110, 70, true},  // bottom-right corner
		{60, 45, true},   // center
		{9.9, 45, false}, // left of rect
		{60, 70.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{X: 11, Y: 0, Width: 5, Height: 5}) {
		t.Error("separated rects should not intersect")
	}
	if !a.Intersects(Rect{X: -5, Y: -5, Width: 30, Height: 30}) {
		t.Error("containing rect should intersect")
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionUp.String() != "up" || DirectionDown.String() != "down" {
		t.Errorf("String() = %q/%q", DirectionUp, DirectionDown)
	}
}
