// Package ecs provides ECS adapters for fling's swipe events.
//
// The primary adapter is [NewDonburiStore], which bridges swipe outcomes
// (exits, zone clicks, scroll progress) into a [Donburi] world as typed
// events. Subscribe to [SwipeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	controller.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
