package factory

import (
	"log"

	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/assets"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex spawns the level singleton for levels[levelIndex]. An
// out of range index falls back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	// Load all levels
	loader := assets.NewLevelLoader()
	levels := loader.MustLoadLevels()

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		log.Printf("Warning: level index %d out of range, using 0", levelIndex)
		levelIndex = 0
	}

	current := levels[levelIndex]
	if cfg.Debug.Verbose {
		log.Printf("level %s: %dx%d mask, %.1f%% walkable",
			current.Name, current.Mask.Width(), current.Mask.Height(), current.Mask.Ratio()*100)
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
	})

	return level
}
