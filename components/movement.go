package components

import (
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/movement"
	"github.com/yohamta/donburi/features/events"
)

// PositionResolvedEvent is the outbound half of the movement port.
type PositionResolvedEvent struct {
	Position   gamemath.Vec
	WasBlocked bool
}

var (
	MovementRequested = events.NewEventType[movement.Request]()
	PositionResolved  = events.NewEventType[PositionResolvedEvent]()
)
