package systems

import (
	"log"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups takes the first pickup inside the hero's reach box while a
// take press is buffered. A press with nothing in reach stays buffered so
// walking onto a pickup a few frames later still takes it.
func UpdatePickups(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !IsBuffered(input, cfg.ActionTakeObject) {
		return
	}

	heroEntry, ok := tags.Hero.First(e.World)
	if !ok || !heroEntry.HasComponent(components.Object) {
		return
	}
	heroObj := components.Object.Get(heroEntry)

	pickupEntry := pickupInReach(heroObj.Object)
	if pickupEntry == nil {
		return
	}

	ConsumeBuffered(input, cfg.ActionTakeObject)
	takePickup(e, components.Hero.Get(heroEntry), pickupEntry)
}

// pickupInReach returns the entry of the first pickup whose box overlaps obj.
func pickupInReach(obj *resolv.Object) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvPickup)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tags.ResolvPickup) {
		if !boxesOverlap(obj, o) {
			continue
		}
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry
		}
	}
	return nil
}

// boxesOverlap is the exact test behind resolv's cell-level Check.
func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func takePickup(e *ecs.ECS, hero *components.HeroData, entry *donburi.Entry) {
	pickup := components.Pickup.Get(entry)
	hero.Collected = append(hero.Collected, pickup.Name)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
	}
	if cfg.Debug.Verbose {
		log.Printf("took pickup %q (id %d)", pickup.Name, pickup.ID)
	}
	e.World.Remove(entry.Entity())
}
