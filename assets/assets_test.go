package assets

import (
	"testing"

	"github.com/automoto/walkabout/shared/gamemath"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	if len(levels) == 0 {
		t.Fatal("no embedded levels")
	}
	for _, level := range levels {
		if len(level.SpawnPoints) == 0 {
			t.Errorf("%s: no spawn points", level.Name)
		}
		if r := level.Mask.Ratio(); r <= 0 || r >= 1 {
			t.Errorf("%s: walkable ratio = %v, want between 0 and 1", level.Name, r)
		}
	}
}

func TestLevelOneObjectsAreWalkable(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("level_1.tmx")

	for _, s := range level.SpawnPoints {
		if !level.Mask.Walkable(s.Pos()) {
			t.Errorf("spawn %v is not walkable", s.Pos())
		}
	}
	for _, p := range level.Pickups {
		center := gamemath.Vec{X: p.X + p.W/2, Y: p.Y + p.H/2}
		if !level.Mask.Walkable(center) {
			t.Errorf("pickup %s at %v is not walkable", p.Name, center)
		}
	}
	if level.IntroWalk == nil {
		t.Fatal("level_1 has no intro walk")
	}
	if !level.Mask.Walkable(level.IntroWalk.Pos()) {
		t.Errorf("intro walk target %v is not walkable", level.IntroWalk.Pos())
	}
}

func TestLevelOneOutsideIsWall(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("level_1.tmx")

	walls := []gamemath.Vec{
		{X: 4, Y: 4},     // map border
		{X: 280, Y: 40},  // between the west room and the east hall
		{X: 200, Y: 220}, // beside the south corridor
		{X: 630, Y: 360}, // bottom-right corner
	}
	for _, p := range walls {
		if level.Mask.Walkable(p) {
			t.Errorf("%v should be a wall", p)
		}
	}
}
