package systems

import (
	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/movement"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// eventPort is the movement.Port over donburi events.
type eventPort struct {
	world donburi.World
}

// NewEventPort returns a movement port that listens to MovementRequested and
// publishes PositionResolved on world.
func NewEventPort(world donburi.World) movement.Port {
	return &eventPort{world: world}
}

func (p *eventPort) OnMovementRequested(handler func(movement.Request)) {
	components.MovementRequested.Subscribe(p.world, func(_ donburi.World, req movement.Request) {
		handler(req)
	})
}

func (p *eventPort) EmitResolvedPosition(position gamemath.Vec, wasBlocked bool) {
	components.PositionResolved.Publish(p.world, components.PositionResolvedEvent{
		Position:   position,
		WasBlocked: wasBlocked,
	})
}

// BindMovement connects the resolver for mask to world and subscribes the
// hero to resolved positions. Call once per world.
func BindMovement(world donburi.World, mask movement.Walkability, r *movement.Resolver) {
	movement.Bind(NewEventPort(world), mask, r)
	components.PositionResolved.Subscribe(world, onPositionResolved)
}

// UpdateMovement drains requests, then the positions they resolved to, so a
// request published earlier in the tick is applied before the tick ends.
func UpdateMovement(e *ecs.ECS) {
	components.MovementRequested.ProcessEvents(e.World)
	components.PositionResolved.ProcessEvents(e.World)
}

func onPositionResolved(w donburi.World, ev components.PositionResolvedEvent) {
	heroEntry, ok := tags.Hero.First(w)
	if !ok {
		return
	}
	hero := components.Hero.Get(heroEntry)
	setHeroPosition(hero, ev.Position)
	hero.Blocked = ev.WasBlocked

	if heroEntry.HasComponent(components.Object) {
		obj := components.Object.Get(heroEntry)
		obj.X = ev.Position.X - obj.W/2
		obj.Y = ev.Position.Y - obj.H/2
		obj.Update()
	}

	if cameraEntry, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Target = math.NewVec2(ev.Position.X, ev.Position.Y)
	}
}
