// Package leveldata parses TMX levels into walkability masks and spawn data.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import (
	"image"

	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/walkmask"
)

// Tiled names the loader looks for.
const (
	WalkableImageLayer = "walkable"
	WalkableZonesGroup = "WalkableZones"
	PlayerSpawnGroup   = "PlayerSpawn"
	PickupsGroup       = "Pickups"
	IntroWalkGroup     = "IntroWalk"
)

// Level holds everything the game needs from one TMX file.
type Level struct {
	Name      string
	MapWidth  int // pixels
	MapHeight int // pixels

	// WalkableImage is the rendered zones image the mask was built from.
	// The client tints it into the level background.
	WalkableImage *image.RGBA
	Mask          *walkmask.Mask

	SpawnPoints []SpawnPoint
	Pickups     []Pickup

	// IntroWalk is an optional scripted walk played when the level starts
	// from its spawn point.
	IntroWalk *Walk
}

// SpawnPoint is a hero start location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Pos returns the spawn as a world point.
func (s SpawnPoint) Pos() gamemath.Vec {
	return gamemath.Vec{X: s.X, Y: s.Y}
}

// Pickup is an object the hero can take with the take action.
type Pickup struct {
	ID         uint32
	Name       string
	X, Y, W, H float64
}

// Walk is a scripted walk target.
type Walk struct {
	X, Y    float64
	Seconds float64
}

// Pos returns the walk target as a world point.
func (w Walk) Pos() gamemath.Vec {
	return gamemath.Vec{X: w.X, Y: w.Y}
}
