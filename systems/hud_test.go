package systems

import (
	"testing"

	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
)

func TestHUDLines(t *testing.T) {
	hero := &components.HeroData{
		Position:       v(12.34, 3),
		Blocked:        true,
		Animation:      "walkLeft",
		AnimationSpeed: 0.3332,
		Collected:      []string{"key", "gem"},
	}
	want := []string{"pos 12.3, 3.0", "blocked yes", "walkLeft x0.33", "collected 2"}

	got := hudLines(hero)
	if len(got) != len(want) {
		t.Fatalf("hudLines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUpdateHUDToggles(t *testing.T) {
	m := useMemStore(t)
	prev := cfg.Debug.ShowHUD
	cfg.Debug.ShowHUD = false
	defer func() { cfg.Debug.ShowHUD = prev }()
	e := newTestECS()
	session := components.Session.Get(archetypes.Session.Spawn(e))
	input := getOrCreateInput(e)

	input.Current[cfg.ActionToggleHUD] = true
	UpdateHUD(e)
	if !session.ShowHUD {
		t.Fatal("toggle press did not show the HUD")
	}
	if len(m.items[settingsKey]) == 0 {
		t.Error("toggle did not save settings")
	}
	if !cfg.Debug.ShowHUD {
		t.Error("toggle did not carry over to cfg.Debug.ShowHUD")
	}

	// Held key: no second toggle.
	input.Previous[cfg.ActionToggleHUD] = true
	UpdateHUD(e)
	if !session.ShowHUD {
		t.Error("held toggle flipped the HUD again")
	}
}

func TestMarkerOffset(t *testing.T) {
	tests := []struct {
		dir    components.Direction
		wx, wy float64
	}{
		{components.DirectionRight, 8, 4},
		{components.DirectionLeft, 0, 4},
		{components.DirectionUp, 4, 0},
		{components.DirectionDown, 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			x, y := markerOffset(tt.dir, 12, 12)
			if x != tt.wx || y != tt.wy {
				t.Errorf("markerOffset = (%v,%v), want (%v,%v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}
