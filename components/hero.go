package components

import (
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Direction is the way the hero faces.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Right"
	}
}

type HeroData struct {
	// Position is the last resolved position. It is only written by the
	// PositionResolved handler so it always obeys the walkable mask.
	Position      gamemath.Vec
	StartPosition *gamemath.Vec

	BaseSpeed float64
	// Speed is the raw input axis vector, or the per-tick displacement while
	// uncontrolled.
	Speed          gamemath.Vec
	IsUncontrolled bool

	Direction      Direction
	Animation      string
	AnimationSpeed float64

	Blocked   bool
	Collected []string
}

var Hero = donburi.NewComponentType[HeroData]()
