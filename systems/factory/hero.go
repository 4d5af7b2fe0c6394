package factory

import (
	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHero spawns the hero. Its position stays at the origin until the
// first forced placement is resolved; see systems.PlaceHero.
//
// The resolv object is the hero box grown by the pickup reach on every side.
// It is only used for pickup queries, never for movement.
func CreateHero(ecs *ecs.ECS) *donburi.Entry {
	hero := archetypes.Hero.Spawn(ecs)

	reach := cfg.Hero.PickupReach
	w := float64(cfg.Hero.CollisionWidth) + 2*reach
	h := float64(cfg.Hero.CollisionHeight) + 2*reach
	obj := resolv.NewObject(-w/2, -h/2, w, h, tags.ResolvHero)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hero
	components.Object.SetValue(hero, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Hero.SetValue(hero, components.HeroData{
		BaseSpeed:      cfg.Hero.DefaultSpeed,
		Direction:      components.DirectionRight,
		Animation:      "idle" + components.DirectionRight.String(),
		AnimationSpeed: cfg.Hero.DefaultAnimationSpeed,
	})

	return hero
}
