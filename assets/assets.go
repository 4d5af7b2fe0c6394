package assets

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/automoto/walkabout/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS

	levelsOnce   sync.Once
	cachedLevels []*leveldata.Level
	levelsErr    error
)

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels parses every embedded level once and returns them in name
// order. Scenes share the returned levels; they are never mutated.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	levelsOnce.Do(func() {
		cachedLevels, levelsErr = leveldata.LoadAllLevels(assetFS, levelsDir)
	})
	if levelsErr != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", levelsErr))
	}
	return cachedLevels
}

// MustLoadLevel parses a single embedded level by file name.
func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	level, err := leveldata.LoadLevel(assetFS, path.Join(levelsDir, name))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}
	return level
}
