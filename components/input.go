package components

import (
	cfg "github.com/automoto/blastoff/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// Downs counts presses seen this tick and is cleared at the end of every tick.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Downs           [cfg.ActionCount]int
	LastInputMethod InputMethod

	// PointerDelta is the look change for this tick, in radians.
	PointerDelta    mgl32.Vec2
	PointerCaptured bool
	// cursor position at the previous poll; valid while captured
	LastCursor [2]int
	HasCursor  bool
}

var Input = donburi.NewComponentType[InputData]()
