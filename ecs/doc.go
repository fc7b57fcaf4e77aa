// Package ecs provides ECS adapters for gallery's event system.
//
// The primary adapter is [NewDonburiStore], which mirrors each plane into a
// [Donburi] entity carrying a [PlaneState] component and republishes gallery
// events (activate, hover, texture load) as typed Donburi events. Subscribe
// to [GalleryEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
