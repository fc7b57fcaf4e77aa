package gallery

// EventType identifies a gallery event.
type EventType uint8

const (
	EventActivate       EventType = iota // plane reached the center
	EventDeactivate                      // plane left the center
	EventHoverEnter                      // pointer entered a loaded plane
	EventHoverLeave                      // pointer left a plane
	EventTextureLoaded                   // background image load applied
	EventTextureFailed                   // background image load failed
)

var eventTypeNames = [...]string{
	EventActivate:      "activate",
	EventDeactivate:    "deactivate",
	EventHoverEnter:    "hover-enter",
	EventHoverLeave:    "hover-leave",
	EventTextureLoaded: "texture-loaded",
	EventTextureFailed: "texture-failed",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event describes a state change of one plane.
type Event struct {
	Type  EventType
	Index int
	Title string
	// Err is set for EventTextureFailed.
	Err error
}

// EventSink receives gallery events. Events are emitted synchronously from
// Scene.Step, in plane order, after the state change they describe.
type EventSink interface {
	EmitEvent(event Event)
}

// SetEventSink registers the sink that receives gallery events. Pass nil to
// stop emitting.
func (s *Scene) SetEventSink(sink EventSink) {
	s.events = sink
}

func (s *Scene) emit(t EventType, p *Plane, err error) {
	if s.events == nil {
		return
	}
	s.events.EmitEvent(Event{Type: t, Index: p.Index, Title: p.Title, Err: err})
}
