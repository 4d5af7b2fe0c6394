package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// ItemStore is the subset of *gdata.Manager the game uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// SetStore replaces the item store and returns the previous one. A nil store
// turns persistence into a no-op.
func SetStore(s ItemStore) ItemStore {
	prev := store
	store = s
	return prev
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowHUD bool `json:"showHUD"`
}

// SavedGameProgress is the hero's last known place.
type SavedGameProgress struct {
	LevelIndex int     `json:"levelIndex"`
	HeroX      float64 `json:"heroX"`
	HeroY      float64 `json:"heroY"`
}

// Position returns the saved hero position.
func (p *SavedGameProgress) Position() gamemath.Vec {
	return gamemath.Vec{X: p.HeroX, Y: p.HeroY}
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	SetStore(m)
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable item is not
// an error: the caller keeps its defaults.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem(settingsKey, &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// ApplySavedSettings copies saved settings into the config globals before the
// first scene is built.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.ShowHUD = saved.ShowHUD
}

func LoadGameProgress() (*SavedGameProgress, error) {
	var progress SavedGameProgress
	ok, err := loadItem(progressKey, &progress)
	if !ok {
		return nil, err
	}
	return &progress, nil
}

func SaveGameProgress(levelIndex int, pos gamemath.Vec) error {
	return saveItem(progressKey, &SavedGameProgress{
		LevelIndex: levelIndex,
		HeroX:      pos.X,
		HeroY:      pos.Y,
	})
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	if store == nil {
		return false
	}
	data, err := store.LoadItem(progressKey)
	return err == nil && len(data) > 0
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(progressKey, nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}
	return nil
}

// UpdateAutosave writes the hero's position every AutosaveInterval ticks.
func UpdateAutosave(e *ecs.ECS) {
	interval := cfg.Persistence.AutosaveInterval
	if interval <= 0 || store == nil {
		return
	}
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	session.TicksSinceSave++
	if session.TicksSinceSave < interval {
		return
	}
	session.TicksSinceSave = 0
	SaveCurrentProgress(e)
}

// SaveCurrentProgress saves the current level and hero position.
func SaveCurrentProgress(e *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(e.World)
	if !ok {
		return
	}
	levelIndex := 0
	if levelEntry, ok := components.Level.First(e.World); ok {
		levelIndex = components.Level.Get(levelEntry).LevelIndex
	}
	_ = SaveGameProgress(levelIndex, components.Hero.Get(heroEntry).Position)
}

func loadItem(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
