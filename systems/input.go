package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateHero in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var pressed [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown := getAnalogStickState(gamepadIDs)

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	pressed[cfg.ActionMoveLeft] = pressed[cfg.ActionMoveLeft] || analogLeft
	pressed[cfg.ActionMoveRight] = pressed[cfg.ActionMoveRight] || analogRight
	pressed[cfg.ActionMoveUp] = pressed[cfg.ActionMoveUp] || analogUp
	pressed[cfg.ActionMoveDown] = pressed[cfg.ActionMoveDown] || analogDown

	advanceInput(input, pressed)
}

// advanceInput is the device independent half of UpdateInput: it swaps the
// frame buffers, prunes expired buffered presses, buffers new presses of
// buffered actions and advances the frame counter.
func advanceInput(input *components.InputData, pressed [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = pressed

	pruneBuffer(input)

	for _, action := range cfg.Input.Buffered {
		if GetAction(input, action).JustPressed {
			AddBuffer(input, action, cfg.Input.BufferFrames)
		}
	}

	input.Frame++
}

// AddBuffer keeps action live for the next duration frames.
func AddBuffer(input *components.InputData, action cfg.ActionID, duration int) {
	input.Buffer = append(input.Buffer, components.BufferedInput{
		Action:    action,
		LastFrame: input.Frame + duration,
	})
}

// pruneBuffer drops entries whose last frame has passed, in place.
func pruneBuffer(input *components.InputData) {
	kept := input.Buffer[:0]
	for _, b := range input.Buffer {
		if b.LastFrame > input.Frame {
			kept = append(kept, b)
		}
	}
	input.Buffer = kept
}

// IsBuffered reports whether action has a live buffered press.
func IsBuffered(input *components.InputData, action cfg.ActionID) bool {
	for _, b := range input.Buffer {
		if b.Action == action {
			return true
		}
	}
	return false
}

// ConsumeBuffered removes the oldest live buffered press of action and
// reports whether there was one.
func ConsumeBuffered(input *components.InputData, action cfg.ActionID) bool {
	for i, b := range input.Buffer {
		if b.Action == action {
			input.Buffer = append(input.Buffer[:i], input.Buffer[i+1:]...)
			return true
		}
	}
	return false
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
