// Package ecs provides ECS adapters for pullrefresh's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges refresh events
// (ready, state changes, refresh, completion, reset) into a [Donburi] world
// as typed events. Subscribe to [RefreshEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	layout.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
