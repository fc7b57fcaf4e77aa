package gallery

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticWheel syntheticKind = iota
	syntheticPointer
	syntheticResize
)

// syntheticEvent is a single injected input event. Wheel deltas are in
// browser-style pixels, pointer coordinates in screen pixels, matching what
// a screenshot shows.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectWheel queues a wheel event with pixel deltas. Positive dy scrolls
// Up, like a browser wheel turned toward the user. The event is consumed on
// the next Step.
func (s *Scene) InjectWheel(dx, dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticWheel, x: dx, y: dy})
}

// InjectWheelFrames queues the same wheel event for the given number of
// consecutive frames. Minimum frames is 1.
func (s *Scene) InjectWheelFrames(dx, dy float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		s.InjectWheel(dx, dy)
	}
}

// InjectPointer queues a pointer move to the given screen coordinates.
func (s *Scene) InjectPointer(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPointer, x: x, y: y})
}

// InjectResize queues a window resize. Inside Run the window itself is
// resized; headless scenes are resized directly.
func (s *Scene) InjectResize(width, height int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticResize,
		x:    float64(width),
		y:    float64(height),
	})
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (live input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticWheel:
		s.Scroll(evt.x, evt.y)
	case syntheticPointer:
		s.movePointer(evt.x, evt.y)
	case syntheticResize:
		if s.liveInput {
			// Layout reports the new size on the next frame.
			ebiten.SetWindowSize(int(evt.x), int(evt.y))
		} else {
			s.Resize(int(evt.x), int(evt.y))
		}
	}
	return true
}
