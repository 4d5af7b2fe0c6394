package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	levelDrawOp = &ebiten.DrawImageOptions{}
)

// facing marker size in pixels
const markerSize = 4

// DrawLevel renders the walkable area tinted as floor; walls stay dark.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.WalkableImage == nil {
		return
	}
	if levelData.Background == nil {
		levelData.Background = ebiten.NewImageFromImage(levelData.CurrentLevel.WalkableImage)
	}

	ox, oy := WorldOffset(camera, screen.Bounds().Dx(), screen.Bounds().Dy())
	levelDrawOp.GeoM.Reset()
	levelDrawOp.ColorScale.Reset()
	levelDrawOp.GeoM.Translate(ox, oy)
	levelDrawOp.ColorScale.ScaleWithColor(cfg.UI.FloorTint)
	screen.DrawImage(levelData.Background, levelDrawOp)
}

// DrawPickups renders every pickup still in the level as a flat box.
func DrawPickups(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	ox, oy := WorldOffset(camera, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen,
			float32(o.X+ox), float32(o.Y+oy), float32(o.W), float32(o.H),
			cfg.UI.PickupColor, false)
	})
}

// DrawHero renders the hero as a box centered on its position with a marker
// on the side it faces. The box turns red while movement is blocked.
func DrawHero(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	heroEntry, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	hero := components.Hero.Get(heroEntry)
	ox, oy := WorldOffset(camera, screen.Bounds().Dx(), screen.Bounds().Dy())

	w := float64(cfg.Hero.CollisionWidth)
	h := float64(cfg.Hero.CollisionHeight)
	x := hero.Position.X - w/2 + ox
	y := hero.Position.Y - h/2 + oy

	c := cfg.UI.HeroColor
	if hero.Blocked {
		c = cfg.UI.HeroBlocked
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)

	mx, my := markerOffset(hero.Direction, w, h)
	vector.DrawFilledRect(screen, float32(x+mx), float32(y+my), markerSize, markerSize, cfg.White, false)
}

// markerOffset places the facing marker inside a w x h box.
func markerOffset(d components.Direction, w, h float64) (float64, float64) {
	switch d {
	case components.DirectionLeft:
		return 0, (h - markerSize) / 2
	case components.DirectionUp:
		return (w - markerSize) / 2, 0
	case components.DirectionDown:
		return (w - markerSize) / 2, h - markerSize
	default:
		return w - markerSize, (h - markerSize) / 2
	}
}
