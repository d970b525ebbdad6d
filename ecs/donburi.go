package ecs

import (
	"github.com/phanxgames/fling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SwipeEventType is the Donburi event type for fling swipe events.
// Subscribers receive every event a controller emits: EventExit once a card
// has left (Edge set), EventZoneClick on a tap inside a band (Zone set) and
// EventScroll on each progress update (ProgressX/ProgressY set). Origin and
// Data identify the card in all of them.
var SwipeEventType = events.NewEventType[fling.SwipeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Swipe events are published to SwipeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) fling.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event fling.SwipeEvent) {
	SwipeEventType.Publish(s.world, event)
}
