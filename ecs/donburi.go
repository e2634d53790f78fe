// Package ecs provides ECS adapters for pullrefresh.
package ecs

import (
	"github.com/phanxgames/pullrefresh"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RefreshEventType is the Donburi event type for refresh lifecycle events.
// Subscribe to this in your ECS systems to react to pulls, commits, and
// completions.
var RefreshEventType = events.NewEventType[pullrefresh.RefreshEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Refresh
// events are published to RefreshEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pullrefresh.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pullrefresh.RefreshEvent) {
	RefreshEventType.Publish(s.world, event)
}
