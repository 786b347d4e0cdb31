// Package ecs bridges shadergui inspectors into a [Donburi] world.
//
// Attach an [Inspected] component to an entity with [NewInspectedEntity],
// call [RenderInspectors] once per frame, and subscribe to
// [MaterialEditedEventType] to react to edits made in the inspector.
//
// Usage:
//
//	ecs.NewInspectedEntity(world, mat, shadergui.NewInspector(host, cfg))
//	...
//	ecs.RenderInspectors(world)
//	ecs.MaterialEditedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
