package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartScriptedWalk takes control away from the player and walks the hero to
// target over the given number of seconds. Each step is still resolved
// against the walkable mask, so a walk into a wall stops at the wall.
func StartScriptedWalk(w donburi.World, target gamemath.Vec, seconds float32) {
	heroEntry, ok := tags.Hero.First(w)
	if !ok {
		return
	}
	hero := components.Hero.Get(heroEntry)

	if !heroEntry.HasComponent(components.ScriptedWalk) {
		heroEntry.AddComponent(components.ScriptedWalk)
	}
	from := hero.Position
	components.ScriptedWalk.SetValue(heroEntry, components.ScriptedWalkData{
		X:      gween.New(float32(from.X), float32(target.X), seconds, ease.Linear),
		Y:      gween.New(float32(from.Y), float32(target.Y), seconds, ease.Linear),
		LastX:  float32(from.X),
		LastY:  float32(from.Y),
		Target: target,
	})

	hero.IsUncontrolled = true
	hero.Speed = gamemath.Vec{}
}

// UpdateScript advances a running scripted walk. Must run before UpdateHero.
func UpdateScript(e *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(e.World)
	if !ok || !heroEntry.HasComponent(components.ScriptedWalk) {
		return
	}
	hero := components.Hero.Get(heroEntry)
	walk := components.ScriptedWalk.Get(heroEntry)

	if stepScript(hero, walk, cfg.Script.TickSeconds) {
		heroEntry.RemoveComponent(components.ScriptedWalk)
	}
}

// stepScript sets the hero speed to this tick's share of the walk and reports
// whether the walk is over. Control is handed back one tick after the tweens
// finish so the final step is still requested.
func stepScript(hero *components.HeroData, walk *components.ScriptedWalkData, dt float32) bool {
	if walk.X == nil {
		hero.IsUncontrolled = false
		hero.Speed = gamemath.Vec{}
		return true
	}

	x, doneX := walk.X.Update(dt)
	y, doneY := walk.Y.Update(dt)

	limit := cfg.Hero.SprintSpeed
	hero.Speed = gamemath.Vec{
		X: gamemath.ClampSpeed(float64(x-walk.LastX), limit),
		Y: gamemath.ClampSpeed(float64(y-walk.LastY), limit),
	}
	walk.LastX, walk.LastY = x, y

	if doneX && doneY {
		walk.X, walk.Y = nil, nil
	}
	return false
}
