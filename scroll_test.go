package gallery

import (
	"math"
	"testing"
)

func newTestController(index, total int, slot float64) *ScrollController {
	s := newScrollController(index, total, DefaultConfig())
	s.SetSlotHeight(slot)
	return s
}

// tick runs Update in 10ms steps for the given number of seconds.
func tick(s *ScrollController, seconds float64) {
	for i := 0; i < int(math.Round(seconds/0.01)); i++ {
		s.Update(0.01)
	}
}

func TestBoundariesThreeItems(t *testing.T) {
	s := newTestController(1, 3, 10)
	b := s.Bounds()
	if b.Bottom != -10 || b.Top != 10 {
		t.Errorf("bounds = %+v, want {-10 10}", b)
	}
}

func TestBoundariesSpanInvariant(t *testing.T) {
	for total := 1; total <= 6; total++ {
		for index := 0; index < total; index++ {
			s := newScrollController(index, total, DefaultConfig())
			for _, slot := range []float64{10, 6.52, 3.1, 12.75} {
				s.SetSlotHeight(slot)
				b := s.Bounds()
				want := slot * float64(total-1)
				if !approxEqual(b.Top-b.Bottom, want, 1e-9) {
					t.Errorf("index %d/%d slot %v: span = %f, want %f", index, total, slot, b.Top-b.Bottom, want)
				}
				if !b.Contains(s.State.Target) {
					t.Errorf("index %d/%d slot %v: target %f outside %+v", index, total, slot, s.State.Target, b)
				}
			}
		}
	}
}

func TestInitialStateParksAtBottom(t *testing.T) {
	s := newTestController(2, 4, 10)
	want := ScrollState{Current: -20, Target: -20, Next: -20}
	if s.State != want {
		t.Errorf("State = %+v, want %+v", s.State, want)
	}
}

func TestScrollUnclamped(t *testing.T) {
	s := newTestController(1, 3, 10)
	s.State = ScrollState{}
	s.Scroll(5, DirectionUp, FrameTime)
	if s.State.Target != 5 {
		t.Errorf("Target = %f, want 5", s.State.Target)
	}
}

func TestScrollTargetAlwaysClamped(t *testing.T) {
	s := newTestController(1, 3, 10)
	inputs := []struct {
		speed float64
		dir   Direction
	}{
		{1.5, DirectionUp}, {100, DirectionUp}, {0.3, DirectionDown},
		{50, DirectionDown}, {50, DirectionDown}, {7, DirectionUp}, {0, DirectionUp},
	}
	b := s.Bounds()
	for i, in := range inputs {
		s.Scroll(in.speed, in.dir, FrameTime)
		if !b.Contains(s.State.Target) {
			t.Fatalf("step %d: Target %f outside [%f, %f]", i, s.State.Target, b.Bottom, b.Top)
		}
		s.Update(0.016)
	}
	s.Scroll(1000, DirectionUp, FrameTime)
	if s.State.Target != b.Top {
		t.Errorf("Target = %f, want clamped to Top %f", s.State.Target, b.Top)
	}
	s.Scroll(1000, DirectionDown, FrameTime)
	if s.State.Target != b.Bottom {
		t.Errorf("Target = %f, want clamped to Bottom %f", s.State.Target, b.Bottom)
	}
}

func TestScrollDampingAtFrameTime(t *testing.T) {
	s := newTestController(0, 3, 10)
	s.State = ScrollState{}
	s.Scroll(5, DirectionUp, FrameTime)
	want := 5 * 5.5 * 0.033
	if !approxEqual(s.State.Next, want, epsilon) {
		t.Errorf("Next = %f, want %f", s.State.Next, want)
	}
	if s.State.Current != 0 {
		t.Errorf("Current = %f, want 0 (clamping and damping never touch Current)", s.State.Current)
	}
}

func TestScrollDampingScalesWithDelta(t *testing.T) {
	a := newTestController(0, 3, 10)
	b := newTestController(0, 3, 10)
	a.Scroll(5, DirectionUp, 1.0/60)
	b.Scroll(5, DirectionUp, 1.0/30)
	if !approxEqual(b.State.Next, 2*a.State.Next, epsilon) {
		t.Errorf("Next at 30Hz = %f, want twice Next at 60Hz (%f)", b.State.Next, a.State.Next)
	}

	// A huge delta never overshoots the target.
	c := newTestController(0, 3, 10)
	c.Scroll(5, DirectionUp, 10)
	if c.State.Next != c.State.Target {
		t.Errorf("Next = %f, want Target %f", c.State.Next, c.State.Target)
	}
}

func TestSnapTargetRoundsToNearestSlot(t *testing.T) {
	tests := []struct {
		next, want float64
	}{
		{14.9, 10},
		{15, 20}, // half away from zero
		{-15, -20},
		{4.9, 0},
		{-0.2, 0},
		{-5.1, -10},
		{0, 0},
	}
	s := newTestController(1, 5, 10)
	for _, tt := range tests {
		s.State.Next = tt.next
		got := s.SnapTarget()
		if got != tt.want {
			t.Errorf("SnapTarget(next=%v) = %v, want %v", tt.next, got, tt.want)
		}
		if got == 0 && math.Signbit(got) {
			t.Errorf("SnapTarget(next=%v) = -0, want +0", tt.next)
		}
	}
}

func TestNearestSlotNormalizesNegativeZero(t *testing.T) {
	i := nearestSlot(-0.2, 10)
	if i != 0 || math.Signbit(i) {
		t.Errorf("nearestSlot(-0.2, 10) = %v (signbit %v), want +0", i, math.Signbit(i))
	}
	if nearestSlot(14.9, 10) != 1 {
		t.Errorf("nearestSlot(14.9, 10) = %v, want 1", nearestSlot(14.9, 10))
	}
}

func TestSnapAnimationSettlesOnSlot(t *testing.T) {
	s := newTestController(0, 3, 10)
	s.State = ScrollState{}
	s.Scroll(1.5, DirectionUp, FrameTime)
	moved := s.State.Next
	if moved <= 0 {
		t.Fatalf("Next = %f, want > 0 after scrolling up", moved)
	}

	// Within the 0.1s delay the damped value holds.
	s.Update(0.05)
	if s.State.Next != moved {
		t.Errorf("Next = %f during snap delay, want %f", s.State.Next, moved)
	}
	if s.State.Current != moved {
		t.Errorf("Current = %f, want committed %f", s.State.Current, moved)
	}

	tick(s, 0.6)
	if s.State.Next != 0 {
		t.Errorf("Next = %v after snap, want exactly 0", s.State.Next)
	}
	if s.State.Current != 0 {
		t.Errorf("Current = %v after snap, want 0", s.State.Current)
	}
}

func TestRepeatedScrollReachesNextSlot(t *testing.T) {
	s := newTestController(0, 3, 10)
	for i := 0; i < 60; i++ {
		s.Scroll(1.5, DirectionUp, FrameTime)
		s.Update(FrameTime)
	}
	tick(s, 0.6)
	if s.State.Next != 10 && s.State.Next != 20 {
		t.Errorf("Next = %f, want a slot multiple above 0", s.State.Next)
	}
	if !s.Bounds().Contains(s.State.Target) {
		t.Errorf("Target %f outside bounds", s.State.Target)
	}
}

func TestNewScrollReplacesSnap(t *testing.T) {
	s := newTestController(0, 3, 10)
	s.Scroll(1.5, DirectionUp, FrameTime)
	s.Scroll(1.5, DirectionUp, FrameTime)
	if n := s.Snap().Len(); n != 1 {
		t.Errorf("snap tracks = %d, want 1", n)
	}
	if s.Snap().Elapsed() != 0 {
		t.Errorf("snap elapsed = %f, want 0 after restart", s.Snap().Elapsed())
	}
}

func TestResizeKeepsCenteredSlot(t *testing.T) {
	s := newTestController(0, 4, 10)
	s.State = ScrollState{Current: 20, Target: 20, Next: 20}
	s.SetSlotHeight(5)
	if s.State.Next != 10 || s.State.Current != 10 || s.State.Target != 10 {
		t.Errorf("State = %+v, want all 10 after halving the slot", s.State)
	}
	b := s.Bounds()
	if b.Bottom != 0 || b.Top != 15 {
		t.Errorf("bounds = %+v, want {0 15}", b)
	}
}

func TestResizeDuringSnapSettlesOnSlot(t *testing.T) {
	s := newTestController(0, 3, 10)
	s.Scroll(1.5, DirectionUp, FrameTime)
	s.Update(0.016)
	s.SetSlotHeight(8)
	if s.Snap().Len() != 0 {
		t.Errorf("snap tracks = %d after resize, want 0", s.Snap().Len())
	}
	tick(s, 3)
	if s.State.Next != 0 || s.State.Current != 0 || s.State.Target != 0 {
		t.Errorf("State = %+v, want all 0 so item 0 stays active", s.State)
	}
}

func TestResizeMidSlotRoundsToNearest(t *testing.T) {
	s := newTestController(1, 4, 10)
	s.State = ScrollState{Current: 7, Target: 9, Next: 7}
	s.SetSlotHeight(8)
	// 7 * 0.8 = 5.6 rounds up to one slot of 8.
	if s.State.Next != 8 || s.State.Current != 8 || s.State.Target != 8 {
		t.Errorf("State = %+v, want all 8", s.State)
	}
	if math.Mod(s.State.Next, s.SlotHeight()) != 0 {
		t.Errorf("Next %f is not a slot multiple", s.State.Next)
	}
}
