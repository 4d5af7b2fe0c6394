package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/fonts"
	"github.com/automoto/walkabout/scenes"
	"github.com/automoto/walkabout/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(progress *systems.SavedGameProgress) *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	levelIndex := config.Debug.LevelIndex
	if progress != nil {
		levelIndex = progress.LevelIndex
	}
	g.scene = scenes.NewWorldScene(g, levelIndex, progress)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipSavedProgress, "fresh", config.Debug.SkipSavedProgress, "ignore saved progress and start at the spawn point")
	flag.BoolVar(&config.Debug.ShowHUD, "hud", config.Debug.ShowHUD, "show the position HUD")
	flag.IntVar(&config.Debug.LevelIndex, "level", config.Debug.LevelIndex, "level index to start on")
	flag.BoolVar(&config.Debug.Verbose, "v", config.Debug.Verbose, "log level and pickup details")
	flag.Parse()

	// Flags given explicitly win over saved settings and progress.
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("walkabout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil && !setFlags["hud"] {
		systems.ApplySavedSettings(saved)
	}

	var progress *systems.SavedGameProgress
	if config.Debug.SkipSavedProgress {
		_ = systems.ClearGameProgress()
	} else if systems.HasSaveGame() && !setFlags["level"] {
		progress, _ = systems.LoadGameProgress()
	}

	if err := ebiten.RunGame(NewGame(progress)); err != nil {
		log.Fatal(err)
	}
}
