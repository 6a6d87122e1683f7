package ecs

import (
	"github.com/phanxgames/reel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for reel collisions.
// Subscribe to this in your ECS systems to receive contacts found by
// colliders on a stage.
var CollisionEventType = events.NewEventType[reel.Collision]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a CollisionSink backed by a Donburi world.
// Contacts are published to CollisionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) reel.CollisionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Publish(c reel.Collision) {
	CollisionEventType.Publish(s.world, c)
}
