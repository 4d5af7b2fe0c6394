package systems

import (
	"testing"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/walkmask"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnTestHero creates a hero without a resolv object.
func spawnTestHero(e *ecs.ECS) *components.HeroData {
	entry := e.World.Entry(e.World.Create(tags.Hero, components.Hero))
	components.Hero.SetValue(entry, components.HeroData{
		BaseSpeed: cfg.Hero.DefaultSpeed,
		Direction: components.DirectionRight,
	})
	return components.Hero.Get(entry)
}

func spawnTestCamera(e *ecs.ECS) *components.CameraData {
	entry := e.World.Entry(e.World.Create(components.Camera))
	return components.Camera.Get(entry)
}

// testMask builds a w x h mask; wall marks black pixels.
func testMask(t *testing.T, w, h int, wall func(x, y int) bool) *walkmask.Mask {
	t.Helper()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i+3] = 0xff
			if wall == nil || !wall(x, y) {
				pix[i], pix[i+1], pix[i+2] = 0xff, 0xff, 0xff
			}
		}
	}
	m, err := walkmask.New(w, h, pix)
	if err != nil {
		t.Fatalf("walkmask.New: %v", err)
	}
	return m
}

func v(x, y float64) gamemath.Vec { return gamemath.Vec{X: x, Y: y} }
