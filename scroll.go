package gallery

import (
	"math"

	"github.com/tanema/gween/ease"
)

// FrameTime is the tick length the damping constant was tuned against.
// Passing it as dt to Scroll reproduces a fixed 30 Hz smoothing step.
const FrameTime = 0.033

// ScrollState holds the three scroll offsets of one plane.
type ScrollState struct {
	// Current is the committed offset from the previous tick.
	Current float64
	// Target is the requested offset, always within the plane's Boundaries.
	Target float64
	// Next is the damped value approaching Target; the snap animation
	// drives it to the nearest slot.
	Next float64
}

// Boundaries are a plane's vertical travel limits.
type Boundaries struct {
	Bottom, Top float64
}

// Contains reports whether v lies in [Bottom, Top].
func (b Boundaries) Contains(v float64) bool {
	return v >= b.Bottom && v <= b.Top
}

// ScrollController converts wheel input into a damped, clamped offset that
// snaps to multiples of the slot height.
type ScrollController struct {
	State ScrollState

	index, total int
	slotHeight   float64
	bounds       Boundaries
	laidOut      bool

	damping      float64
	snapDuration float32
	snapDelay    float32
	snapEase     ease.TweenFunc
	snap         *Timeline
}

// newScrollController creates a controller for item index of total using the
// timing values from cfg. It has no boundaries until SetSlotHeight is called.
func newScrollController(index, total int, cfg Config) *ScrollController {
	return &ScrollController{
		index:        index,
		total:        total,
		damping:      cfg.Damping,
		snapDuration: cfg.SnapDuration,
		snapDelay:    cfg.SnapDelay,
		snapEase:     ease.InCirc,
		snap:         NewTimeline(),
	}
}

// SlotHeight returns the vertical spacing between consecutive items.
func (s *ScrollController) SlotHeight() float64 {
	return s.slotHeight
}

// Bounds returns the current travel limits.
func (s *ScrollController) Bounds() Boundaries {
	return s.bounds
}

// Snap returns the snap timeline.
func (s *ScrollController) Snap() *Timeline {
	return s.snap
}

// SetSlotHeight recomputes the boundaries for a new slot height. The first
// call parks the item at its bottom boundary so item 0 starts centered.
// Later calls rescale the scroll state and settle it on the nearest slot, so
// the same item stays centered.
func (s *ScrollController) SetSlotHeight(slot float64) {
	prev := s.slotHeight
	s.slotHeight = slot

	scrollLimit := slot * float64(s.total-1)
	s.bounds.Bottom = -slot * float64(s.index)
	s.bounds.Top = s.bounds.Bottom + scrollLimit

	if !s.laidOut || prev == 0 {
		s.laidOut = true
		s.State = ScrollState{
			Current: s.bounds.Bottom,
			Target:  s.bounds.Bottom,
			Next:    s.bounds.Bottom,
		}
		return
	}

	// A resize drops any running snap, so the rescaled offset is settled on
	// the nearest slot here. Otherwise no plane would reach 0 again until
	// the next wheel event.
	s.snap.Clear()
	settled := clamp(nearestSlot(s.State.Next*slot/prev, slot)*slot, s.bounds.Bottom, s.bounds.Top)
	s.State = ScrollState{Current: settled, Target: settled, Next: settled}
}

// Scroll applies one wheel step of the given speed. dt is the length of the
// tick the input arrived in; FrameTime reproduces the fixed-step behavior.
func (s *ScrollController) Scroll(speed float64, dir Direction, dt float64) {
	if dir == DirectionUp {
		s.State.Target += speed
	} else {
		s.State.Target -= speed
	}
	s.State.Target = clamp(s.State.Target, s.bounds.Bottom, s.bounds.Top)

	k := math.Min(1, s.damping*dt)
	s.State.Next = s.State.Current + (s.State.Target-s.State.Current)*k

	s.snap.Clear()
	s.snap.To(&s.State.Next, s.SnapTarget(), s.snapDuration, s.snapDelay, s.snapEase)
}

// SnapTarget returns the slot multiple nearest to Next.
func (s *ScrollController) SnapTarget() float64 {
	return nearestSlot(s.State.Next, s.slotHeight) * s.slotHeight
}

// nearestSlot rounds v/slot half away from zero and folds -0 into 0.
func nearestSlot(v, slot float64) float64 {
	if slot == 0 {
		return 0
	}
	i := math.Round(v / slot)
	if i == 0 {
		// math.Round(-0.2) is -0.
		i = 0
	}
	return i
}

// Update plays the snap animation, then commits Next as the current offset.
// It returns the committed offset.
func (s *ScrollController) Update(dt float64) float64 {
	s.snap.Play()
	s.snap.Update(float32(dt))
	s.State.Current = s.State.Next
	return s.State.Next
}
