package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/movement"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHero turns input (or the running script) into a movement request.
// The hero's position is not touched here; it changes only when the
// resolved position comes back through UpdateMovement.
func UpdateHero(e *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(e.World)
	if !ok {
		return
	}
	hero := components.Hero.Get(heroEntry)

	if !hero.IsUncontrolled {
		applyControls(hero, getOrCreateInput(e))
	}

	step := NormalizedSpeed(hero)
	updateFacing(hero, step)

	components.MovementRequested.Publish(e.World, movement.Request{
		Previous:  hero.Position,
		Requested: hero.Position.Add(step),
	})
}

// applyControls reads the movement actions into the hero's speed state.
func applyControls(hero *components.HeroData, input *components.InputData) {
	if input.Current[cfg.ActionSprint] {
		hero.BaseSpeed = cfg.Hero.SprintSpeed
	} else {
		hero.BaseSpeed = cfg.Hero.DefaultSpeed
	}

	hero.Speed = gamemath.Vec{
		X: gamemath.AxisFromInput(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]),
		Y: gamemath.AxisFromInput(input.Current[cfg.ActionMoveUp], input.Current[cfg.ActionMoveDown]),
	}
}

// NormalizedSpeed is the per-tick displacement the hero asks for. A scripted
// hero moves by its raw speed.
func NormalizedSpeed(hero *components.HeroData) gamemath.Vec {
	if hero.IsUncontrolled {
		return hero.Speed
	}
	return gamemath.NormalizeSpeed(hero.Speed, hero.BaseSpeed)
}

// updateFacing picks the facing direction from the raw speed. Vertical
// movement wins over horizontal and a still hero keeps its last direction.
func updateFacing(hero *components.HeroData, step gamemath.Vec) {
	switch {
	case hero.Speed.Y < 0:
		hero.Direction = components.DirectionUp
	case hero.Speed.Y > 0:
		hero.Direction = components.DirectionDown
	case hero.Speed.X > 0:
		hero.Direction = components.DirectionRight
	case hero.Speed.X < 0:
		hero.Direction = components.DirectionLeft
	}

	if step.X != 0 || step.Y != 0 {
		hero.Animation = "walk" + hero.Direction.String()
	} else {
		hero.Animation = "idle" + hero.Direction.String()
	}

	base := hero.BaseSpeed
	if base == 0 {
		base = cfg.Hero.DefaultSpeed
	}
	hero.AnimationSpeed = cfg.Hero.DefaultAnimationSpeed * base / cfg.Hero.DefaultSpeed
}

// setHeroPosition records a resolved position. The first position the hero
// ever gets becomes its start position.
func setHeroPosition(hero *components.HeroData, pos gamemath.Vec) {
	hero.Position = pos
	if hero.StartPosition == nil {
		start := pos
		hero.StartPosition = &start
	}
}

// PlaceHero teleports the hero to pos without collision checks. Used for
// spawning and restoring saved progress; the camera jumps with it.
func PlaceHero(w donburi.World, pos gamemath.Vec) {
	heroEntry, ok := tags.Hero.First(w)
	if !ok {
		return
	}
	hero := components.Hero.Get(heroEntry)
	components.MovementRequested.Publish(w, movement.Request{
		Previous:  hero.Position,
		Requested: pos,
		Forced:    true,
	})

	if cameraEntry, ok := components.Camera.First(w); ok {
		components.Camera.Get(cameraEntry).Snap = true
	}
}
