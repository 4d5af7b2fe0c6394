package scenes

import (
	"testing"

	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/leveldata"
	"github.com/automoto/walkabout/systems"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi"
)

// memStore is an in-memory systems.ItemStore.
type memStore struct {
	items map[string][]byte
}

func (m *memStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func useMemStore(t *testing.T) {
	t.Helper()
	prev := systems.SetStore(&memStore{items: map[string][]byte{}})
	t.Cleanup(func() { systems.SetStore(prev) })
}

// configuredScene builds the first level without running a tick.
func configuredScene(t *testing.T, progress *systems.SavedGameProgress) *WorldScene {
	t.Helper()
	ws := NewWorldScene(nil, 0, progress)
	ws.once.Do(ws.configure)
	return ws
}

func levelOf(ws *WorldScene) *components.LevelData {
	entry, _ := components.Level.First(ws.ecs.World)
	return components.Level.Get(entry)
}

func heroOf(t *testing.T, ws *WorldScene) (*donburi.Entry, *components.HeroData) {
	t.Helper()
	entry, ok := tags.Hero.First(ws.ecs.World)
	if !ok {
		t.Fatal("scene has no hero")
	}
	return entry, components.Hero.Get(entry)
}

func sessionOf(ws *WorldScene) *components.SessionData {
	entry, _ := components.Session.First(ws.ecs.World)
	return components.Session.Get(entry)
}

func takeAllPickups(w donburi.World) {
	var taken []donburi.Entity
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		taken = append(taken, e.Entity())
	})
	for _, e := range taken {
		w.Remove(e)
	}
}

func TestNextLevel(t *testing.T) {
	tests := []struct {
		name      string
		levels    int
		index     int
		noPickups bool
		takeAll   bool
		want      int
		wantOK    bool
	}{
		{"all taken advances", 2, 0, false, true, 1, true},
		{"wraps after the last level", 2, 1, false, true, 0, true},
		{"middle of three", 3, 1, false, true, 2, true},
		{"pickups left", 2, 0, false, false, 0, false},
		{"single level never advances", 1, 0, false, true, 0, false},
		{"level without pickups never advances", 2, 0, true, true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMemStore(t)
			ws := configuredScene(t, nil)
			levelData := levelOf(ws)

			current := levelData.CurrentLevel
			if tt.noPickups {
				bare := *current
				bare.Pickups = nil
				current = &bare
			}
			levelData.CurrentLevel = current
			levelData.Levels = make([]*leveldata.Level, tt.levels)
			for i := range levelData.Levels {
				levelData.Levels[i] = current
			}
			levelData.LevelIndex = tt.index

			if tt.takeAll {
				takeAllPickups(ws.ecs.World)
			}

			got, ok := ws.nextLevel()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("nextLevel = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFreshEntryCheckpointsAndStartsIntroWalk(t *testing.T) {
	useMemStore(t)
	ws := configuredScene(t, nil)
	level := levelOf(ws).CurrentLevel
	entry, hero := heroOf(t, ws)
	spawn := level.SpawnPoints[0].Pos()

	if hero.Position != spawn {
		t.Errorf("Position = %v, want spawn %v", hero.Position, spawn)
	}
	if sessionOf(ws).Restored {
		t.Error("Restored = true on a fresh entry")
	}
	if !entry.HasComponent(components.ScriptedWalk) || !hero.IsUncontrolled {
		t.Error("intro walk did not start")
	}

	saved, err := systems.LoadGameProgress()
	if err != nil || saved == nil {
		t.Fatalf("LoadGameProgress = %v, %v; want a checkpoint", saved, err)
	}
	if saved.LevelIndex != 0 || saved.Position() != spawn {
		t.Errorf("checkpoint = %+v, want level 0 at %v", saved, spawn)
	}
}

func TestRestoreProgress(t *testing.T) {
	tests := []struct {
		name         string
		progress     systems.SavedGameProgress
		wantRestored bool
		wantAtSave   bool
	}{
		{"walkable spot", systems.SavedGameProgress{LevelIndex: 0, HeroX: 200, HeroY: 140}, true, true},
		{"onto a wall", systems.SavedGameProgress{LevelIndex: 0, HeroX: 4, HeroY: 4}, false, false},
		{"other level", systems.SavedGameProgress{LevelIndex: 3, HeroX: 200, HeroY: 140}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMemStore(t)
			progress := tt.progress
			ws := configuredScene(t, &progress)
			level := levelOf(ws).CurrentLevel
			entry, hero := heroOf(t, ws)

			want := level.SpawnPoints[0].Pos()
			if tt.wantAtSave {
				want = progress.Position()
			}
			if hero.Position != want {
				t.Errorf("Position = %v, want %v", hero.Position, want)
			}
			if got := sessionOf(ws).Restored; got != tt.wantRestored {
				t.Errorf("Restored = %v, want %v", got, tt.wantRestored)
			}
			if got := entry.HasComponent(components.ScriptedWalk); got == tt.wantRestored {
				t.Errorf("intro walk running = %v with Restored = %v", got, tt.wantRestored)
			}
			if hero.Blocked {
				t.Error("placement reported blocked")
			}
		})
	}
}

func TestSpawnIsWalkable(t *testing.T) {
	useMemStore(t)
	ws := configuredScene(t, nil)
	level := levelOf(ws).CurrentLevel
	_, hero := heroOf(t, ws)

	if !level.Mask.Walkable(hero.Position) {
		t.Errorf("hero placed on a wall at %v", hero.Position)
	}
	if hero.StartPosition == nil || *hero.StartPosition != (gamemath.Vec{X: 64, Y: 64}) {
		t.Errorf("StartPosition = %v, want (64,64)", hero.StartPosition)
	}
}
