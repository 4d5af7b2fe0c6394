package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the center of the screen
	Target   math.Vec2 // last resolved hero position
	Snap     bool      // jump to Target on the next update
}

var Camera = donburi.NewComponentType[CameraData]()
