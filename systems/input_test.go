package systems

import (
	"testing"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
)

func keysDown(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var p [cfg.ActionCount]bool
	for _, a := range actions {
		p[a] = true
	}
	return p
}

func TestGetActionEdges(t *testing.T) {
	input := &components.InputData{}

	advanceInput(input, keysDown(cfg.ActionSprint))
	if s := GetAction(input, cfg.ActionSprint); !s.Pressed || !s.JustPressed {
		t.Errorf("first frame = %+v, want pressed and just pressed", s)
	}

	advanceInput(input, keysDown(cfg.ActionSprint))
	if s := GetAction(input, cfg.ActionSprint); !s.Pressed || s.JustPressed {
		t.Errorf("held frame = %+v, want pressed only", s)
	}

	advanceInput(input, keysDown())
	if s := GetAction(input, cfg.ActionSprint); s.Pressed || !s.JustReleased {
		t.Errorf("release frame = %+v, want just released", s)
	}
}

func TestTakeObjectBufferLifetime(t *testing.T) {
	input := &components.InputData{}
	frames := cfg.Input.BufferFrames

	advanceInput(input, keysDown(cfg.ActionTakeObject))
	if !IsBuffered(input, cfg.ActionTakeObject) {
		t.Fatal("press was not buffered")
	}

	// Live for BufferFrames ticks including the press tick.
	for i := 1; i < frames; i++ {
		advanceInput(input, keysDown())
		if !IsBuffered(input, cfg.ActionTakeObject) {
			t.Fatalf("buffer expired after %d ticks, want %d", i+1, frames)
		}
	}

	advanceInput(input, keysDown())
	if IsBuffered(input, cfg.ActionTakeObject) {
		t.Errorf("buffer still live after %d ticks", frames+1)
	}
	if len(input.Buffer) != 0 {
		t.Errorf("len(Buffer) = %d, want 0 after pruning", len(input.Buffer))
	}
}

func TestHeldKeyBuffersOnce(t *testing.T) {
	input := &components.InputData{}
	for i := 0; i < 4; i++ {
		advanceInput(input, keysDown(cfg.ActionTakeObject))
	}
	if len(input.Buffer) != 1 {
		t.Errorf("len(Buffer) = %d, want 1 for a held key", len(input.Buffer))
	}
}

func TestUnbufferedActionsAreNotBuffered(t *testing.T) {
	input := &components.InputData{}
	advanceInput(input, keysDown(cfg.ActionSprint, cfg.ActionMoveUp))
	if len(input.Buffer) != 0 {
		t.Errorf("len(Buffer) = %d, want 0", len(input.Buffer))
	}
}

func TestConsumeBuffered(t *testing.T) {
	input := &components.InputData{}
	AddBuffer(input, cfg.ActionTakeObject, 4)
	AddBuffer(input, cfg.ActionTakeObject, 4)

	if !ConsumeBuffered(input, cfg.ActionTakeObject) {
		t.Fatal("ConsumeBuffered = false, want true")
	}
	if len(input.Buffer) != 1 {
		t.Errorf("len(Buffer) = %d, want 1", len(input.Buffer))
	}
	ConsumeBuffered(input, cfg.ActionTakeObject)
	if ConsumeBuffered(input, cfg.ActionTakeObject) {
		t.Error("ConsumeBuffered on an empty buffer = true")
	}
}

func TestFrameCounterAdvances(t *testing.T) {
	input := &components.InputData{}
	for i := 0; i < 5; i++ {
		advanceInput(input, keysDown())
	}
	if input.Frame != 5 {
		t.Errorf("Frame = %d, want 5", input.Frame)
	}
}
