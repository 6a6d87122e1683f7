// Package ecs provides ECS adapters for reel's collision events.
//
// The primary adapter is [NewDonburiSink], which bridges every contact found
// by a reel Collider into a [Donburi] world as a typed event. Subscribe to
// [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetCollisionSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
