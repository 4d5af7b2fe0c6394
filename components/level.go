package components

import (
	"github.com/automoto/walkabout/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level
	// Background is created lazily by the renderer from the walkable image.
	Background *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
