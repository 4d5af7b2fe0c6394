package scenes

import (
	"errors"
	"log"
	"sync"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/movement"
	"github.com/automoto/walkabout/systems"
	"github.com/automoto/walkabout/systems/factory"
	"github.com/automoto/walkabout/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene is one level: the hero walking its walkable mask.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	progress     *systems.SavedGameProgress
	once         sync.Once
}

// NewWorldScene creates the scene for levelIndex. progress, when non-nil and
// saved on the same level, puts the hero back where it was.
func NewWorldScene(sc SceneChanger, levelIndex int, progress *systems.SavedGameProgress) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex, progress: progress}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if next, ok := ws.nextLevel(); ok {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, next, nil))
	}
}

// nextLevel reports the level to move to once every pickup is taken.
// Single-level games stay where they are.
func (ws *WorldScene) nextLevel() (int, bool) {
	levelEntry, ok := components.Level.First(ws.ecs.World)
	if !ok {
		return 0, false
	}
	levelData := components.Level.Get(levelEntry)
	if len(levelData.Levels) < 2 || len(levelData.CurrentLevel.Pickups) == 0 {
		return 0, false
	}

	remaining := 0
	tags.Pickup.Each(ws.ecs.World, func(*donburi.Entry) {
		remaining++
	})
	if remaining > 0 {
		return 0, false
	}
	return (levelData.LevelIndex + 1) % len(levelData.Levels), true
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.UI.BackgroundColor)
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	world := donburi.NewWorld()
	ecs := ecs.NewECS(world)

	// Input first, then anything that sets the hero's speed, then the
	// movement round trip, then whatever reads the resolved position.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateScript)
	ecs.AddSystem(systems.UpdateHero)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAutosave)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPickups)
	ecs.AddRenderer(cfg.Default, systems.DrawHero)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	// Create the level entity and load level data FIRST.
	levelEntry := factory.CreateLevelAtIndex(ws.ecs, ws.levelIndex)
	levelData := components.Level.Get(levelEntry)
	level := levelData.CurrentLevel
	ws.levelIndex = levelData.LevelIndex

	// The space only backs pickup queries; movement uses the mask.
	factory.CreateSpace(ws.ecs, level.MapWidth, level.MapHeight, 16, 16)
	factory.CreateCamera(ws.ecs)
	session := components.Session.Get(factory.CreateSession(ws.ecs, cfg.Debug.ShowHUD))

	for _, p := range level.Pickups {
		factory.CreatePickup(ws.ecs, p)
	}
	factory.CreateHero(ws.ecs)

	resolver := movement.NewResolverDegrees(cfg.Resolver.ProbeAngleDegrees...)
	systems.BindMovement(world, level.Mask, resolver)

	if len(level.SpawnPoints) == 0 {
		panic(errors.New("no player spawn points defined in map"))
	}
	systems.PlaceHero(world, level.SpawnPoints[0].Pos())

	if p := ws.progress; p != nil && p.LevelIndex == ws.levelIndex {
		if level.Mask.Walkable(p.Position()) {
			systems.PlaceHero(world, p.Position())
			session.Restored = true
		} else {
			log.Printf("Warning: saved position %v is not walkable, starting at spawn", p.Position())
		}
	}

	// Settle the placements now so the hero starts the first tick in place.
	systems.UpdateMovement(ws.ecs)

	if session.Restored {
		return
	}
	// Entering a level is a checkpoint.
	systems.SaveCurrentProgress(ws.ecs)
	if level.IntroWalk != nil {
		systems.StartScriptedWalk(world, level.IntroWalk.Pos(), float32(level.IntroWalk.Seconds))
	}
}
