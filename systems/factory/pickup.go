package factory

import (
	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/shared/leveldata"
	"github.com/automoto/walkabout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pickups placed as points in Tiled get this size.
const defaultPickupSize = 8

func CreatePickup(ecs *ecs.ECS, p leveldata.Pickup) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	x, y, w, h := p.X, p.Y, p.W, p.H
	if w <= 0 || h <= 0 {
		w, h = defaultPickupSize, defaultPickupSize
		x, y = x-w/2, y-h/2
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = pickup // Link for O(1) lookup

	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	components.Pickup.SetValue(pickup, components.PickupData{
		ID:   p.ID,
		Name: p.Name,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return pickup
}
