package gallery

import "testing"

func TestContentSizeScalesWithHeight(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.contentSize(1500); got != (Vec2{X: 1000, Y: 500}) {
		t.Errorf("contentSize(1500) = %v, want 1000x500", got)
	}
	if got := cfg.contentSize(750); got != (Vec2{X: 500, Y: 250}) {
		t.Errorf("contentSize(750) = %v, want 500x250", got)
	}
}

func TestCustomConfigPadding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = 3
	p := NewPlane(0, 2, Entry{Src: "a.png"}, cfg)
	p.Resize(ComputeViewport(1500, 1500, cfg.FOV, cfg.Distance))
	if !approxEqual(p.SlotHeight(), p.Scale.Y+3, 1e-12) {
		t.Errorf("SlotHeight = %f, want Scale.Y + 3", p.SlotHeight())
	}
}
