package systems

import (
	"fmt"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/fonts"
	"github.com/automoto/walkabout/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudWidth = 190

// UpdateHUD flips the HUD on the toggle action and remembers the choice.
func UpdateHUD(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	if !GetAction(getOrCreateInput(e), cfg.ActionToggleHUD).JustPressed {
		return
	}
	session := components.Session.Get(sessionEntry)
	session.ShowHUD = !session.ShowHUD
	// Later scenes build their session from the config.
	cfg.Debug.ShowHUD = session.ShowHUD
	_ = SaveSettings(&SavedSettings{ShowHUD: session.ShowHUD})
}

// DrawHUD renders the hero's resolved position, blocked state and animation
// in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok || !components.Session.Get(sessionEntry).ShowHUD {
		return
	}
	heroEntry, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}

	lines := hudLines(components.Hero.Get(heroEntry))
	margin := cfg.UI.HUDMargin
	lineHeight := cfg.UI.HUDLineHeight

	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		hudWidth, float32(lineHeight*float64(len(lines))+margin),
		cfg.UI.HUDBoxColor, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		y := margin + lineHeight*float64(i+1)
		text.Draw(screen, line, face, int(margin*2), int(y), cfg.UI.HUDTextColor)
	}
}

func hudLines(hero *components.HeroData) []string {
	blocked := "no"
	if hero.Blocked {
		blocked = "yes"
	}
	return []string{
		fmt.Sprintf("pos %.1f, %.1f", hero.Position.X, hero.Position.Y),
		"blocked " + blocked,
		fmt.Sprintf("%s x%.2f", hero.Animation, hero.AnimationSpeed),
		fmt.Sprintf("collected %d", len(hero.Collected)),
	}
}
