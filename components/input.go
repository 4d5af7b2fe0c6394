package components

import (
	cfg "github.com/automoto/walkabout/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// BufferedInput keeps a press alive until LastFrame.
type BufferedInput struct {
	Action    cfg.ActionID
	LastFrame int
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Buffer   []BufferedInput
	Frame    int
}

var Input = donburi.NewComponentType[InputData]()
