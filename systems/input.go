package systems

import (
	"strings"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	var current [cfg.ActionCount]bool

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	stick := [...]struct {
		action cfg.ActionID
		held   bool
	}{
		{cfg.ActionMoveLeft, analogLeft},
		{cfg.ActionMoveRight, analogRight},
		{cfg.ActionMoveUp, analogUp},
		{cfg.ActionMoveDown, analogDown},
	}
	for _, s := range stick {
		if s.held {
			current[s.action] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	recordActions(input, current)
	updatePointer(input)
	addStickLook(input, gamepadIDs, deltaTime(e))
}

// recordActions swaps the pressed buffers and counts the presses that
// started this tick.
func recordActions(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
	for id := range current {
		if current[id] && !input.Previous[id] {
			input.Downs[id]++
		}
	}
}

// updatePointer captures the cursor on click, releases it on the release
// action and turns cursor motion into a look delta while captured.
func updatePointer(input *components.InputData) {
	if GetAction(input, cfg.ActionReleasePointer).JustPressed && input.PointerCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		input.PointerCaptured = false
		input.HasCursor = false
	}
	if inpututil.IsMouseButtonJustPressed(cfg.Input.CaptureButton) && !input.PointerCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		input.PointerCaptured = true
		input.HasCursor = false
	}
	if !input.PointerCaptured {
		return
	}
	x, y := ebiten.CursorPosition()
	addPointerMotion(input, x, y, cfg.C.Height)
}

// addPointerMotion accumulates cursor motion as a look delta. Moving the
// cursor one window height turns the view by one radian.
func addPointerMotion(input *components.InputData, x, y, height int) {
	if input.HasCursor && height > 0 {
		dx := float32(x - input.LastCursor[0])
		dy := float32(y - input.LastCursor[1])
		h := float32(height)
		input.PointerDelta[0] += -dx / h
		input.PointerDelta[1] += -dy / h
	}
	input.LastCursor = [2]int{x, y}
	input.HasCursor = true
}

// addStickLook turns the right stick into a look delta.
func addStickLook(input *components.InputData, gamepads []ebiten.GamepadID, dt float32) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if h > -deadzone && h < deadzone {
			h = 0
		}
		if v > -deadzone && v < deadzone {
			v = 0
		}
		input.PointerDelta[0] += -float32(h) * cfg.Input.StickLookSpeed * dt
		input.PointerDelta[1] += -float32(v) * cfg.Input.StickLookSpeed * dt
	}
}

// ClearInputEdges drops per-tick press counts and look motion. Runs last.
func ClearInputEdges(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Downs = [cfg.ActionCount]int{}
	input.PointerDelta = [2]float32{}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
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
