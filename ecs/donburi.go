package ecs

import (
	"github.com/wataofuton/shadergui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Inspected pairs a material with the inspector that edits it.
type Inspected struct {
	Material  *shadergui.Material
	Inspector *shadergui.Inspector
}

// InspectedComponent is the Donburi component holding an Inspected.
var InspectedComponent = donburi.NewComponentType[Inspected]()

// MaterialEdited is published when an inspector pass changed a material.
type MaterialEdited struct {
	Entity   donburi.Entity
	Material *shadergui.Material
}

// MaterialEditedEventType is the Donburi event type for material edits.
// Events are queued; consume them with ProcessEvents.
var MaterialEditedEventType = events.NewEventType[MaterialEdited]()

var inspectedQuery = donburi.NewQuery(filter.Contains(InspectedComponent))

// NewInspectedEntity creates an entity carrying mat and insp.
func NewInspectedEntity(world donburi.World, mat *shadergui.Material, insp *shadergui.Inspector) donburi.Entity {
	e := world.Create(InspectedComponent)
	InspectedComponent.SetValue(world.Entry(e), Inspected{Material: mat, Inspector: insp})
	return e
}

// RenderInspectors runs one inspector pass for every inspected entity and
// publishes MaterialEdited for each material the pass left dirty, clearing
// its dirty flag. It returns the number of passes run. Entities missing a
// material or inspector are skipped.
func RenderInspectors(world donburi.World) int {
	n := 0
	inspectedQuery.Each(world, func(entry *donburi.Entry) {
		in := InspectedComponent.Get(entry)
		if in.Material == nil || in.Inspector == nil {
			return
		}
		in.Inspector.Render(in.Material)
		n++
		if !in.Material.Dirty() {
			return
		}
		in.Material.ClearDirty()
		MaterialEditedEventType.Publish(world, MaterialEdited{Entity: entry.Entity(), Material: in.Material})
	})
	return n
}
