package ecs

import (
	"github.com/phanxgames/gallery"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GalleryEventType is the Donburi event type for gallery events.
var GalleryEventType = events.NewEventType[gallery.Event]()

// PlaneState is the component attached to the entity mirroring a plane.
type PlaneState struct {
	Index   int
	Title   string
	Active  bool
	Hovered bool
	Loaded  bool
	Failed  bool
}

// PlaneComponent is the Donburi component type for PlaneState.
var PlaneComponent = donburi.NewComponentType[PlaneState]()

// DonburiStore is a gallery.EventSink backed by a Donburi world. Entities
// are created lazily, one per plane index, on the first event that names it.
type DonburiStore struct {
	world    donburi.World
	entities map[int]donburi.Entity
}

// NewDonburiStore creates an event sink backed by a Donburi world. Events are
// published to GalleryEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[int]donburi.Entity)}
}

// EmitEvent updates the plane's component, then publishes the event.
func (s *DonburiStore) EmitEvent(event gallery.Event) {
	st := PlaneComponent.Get(s.world.Entry(s.entity(event)))
	switch event.Type {
	case gallery.EventActivate:
		st.Active = true
	case gallery.EventDeactivate:
		st.Active = false
	case gallery.EventHoverEnter:
		st.Hovered = true
	case gallery.EventHoverLeave:
		st.Hovered = false
	case gallery.EventTextureLoaded:
		st.Loaded, st.Failed = true, false
	case gallery.EventTextureFailed:
		st.Failed = true
	}
	GalleryEventType.Publish(s.world, event)
}

// Entity returns the entity mirroring the plane at index, if one exists.
func (s *DonburiStore) Entity(index int) (donburi.Entity, bool) {
	e, ok := s.entities[index]
	return e, ok
}

func (s *DonburiStore) entity(event gallery.Event) donburi.Entity {
	if e, ok := s.entities[event.Index]; ok {
		return e
	}
	e := s.world.Create(PlaneComponent)
	PlaneComponent.SetValue(s.world.Entry(e), PlaneState{Index: event.Index, Title: event.Title})
	s.entities[event.Index] = e
	return e
}
