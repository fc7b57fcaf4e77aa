// Package gallery renders a vertical list of images as textured planes for
// [Ebitengine], with inertial wheel scrolling, slot snapping, a focus fade on
// the centered image and a hover dim.
//
// # Quick start
//
//	m, err := gallery.LoadManifest(os.DirFS("assets"), "data.json")
//	// ...
//	labels, err := gallery.NewTitleList(goregular.TTF, 18)
//	// ...
//	scene, err := gallery.NewScene(m, os.DirFS("assets"), gallery.DefaultConfig(), labels)
//	// ...
//	gallery.Run(scene, gallery.RunConfig{Title: "Gallery", Width: 1280, Height: 800})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.Layout] directly.
//
// # Model
//
// The camera is a fixed perspective camera; [ComputeViewport] turns its field
// of view and distance into the world-space extent of the window. Each
// [Plane] sizes itself from a pixel footprint that scales with the window
// height, so every plane shares one slot height. Wheel input becomes a
// target offset clamped to the plane's [Boundaries]; the plane eases toward
// it with a damping step and a [Timeline] snaps it to the nearest slot. The
// plane sitting exactly at offset 0 is active and fades to full alpha.
//
// Animations use [gween] easing curves.
//
// # Events
//
// [Scene.SetEventSink] receives activate, hover and texture events as they
// happen. The ecs subpackage forwards them into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package gallery
