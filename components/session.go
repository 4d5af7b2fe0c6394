package components

import "github.com/yohamta/donburi"

// SessionData is the per-scene singleton for HUD and save state.
type SessionData struct {
	ShowHUD        bool
	TicksSinceSave int
	Restored       bool // progress was restored from disk this session
}

var Session = donburi.NewComponentType[SessionData]()
