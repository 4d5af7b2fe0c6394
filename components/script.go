package components

import (
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScriptedWalkData drives the hero toward Target while it is uncontrolled.
// X and Y run in lockstep; Last holds the previous tween sample so each tick
// can turn the tween into a per-tick displacement.
type ScriptedWalkData struct {
	X, Y   *gween.Tween
	LastX  float32
	LastY  float32
	Target gamemath.Vec
}

var ScriptedWalk = donburi.NewComponentType[ScriptedWalkData]()
