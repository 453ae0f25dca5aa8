package systems

import (
	"testing"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/flight"
	"github.com/stretchr/testify/assert"
)

func TestRecordActionsCountsPressEdges(t *testing.T) {
	input := &components.InputData{}

	var held [cfg.ActionCount]bool
	held[cfg.ActionLaunch] = true
	recordActions(input, held)
	assert.Equal(t, 1, input.Downs[cfg.ActionLaunch])
	assert.True(t, GetAction(input, cfg.ActionLaunch).JustPressed)

	// Holding does not count again.
	recordActions(input, held)
	assert.Equal(t, 1, input.Downs[cfg.ActionLaunch])
	assert.False(t, GetAction(input, cfg.ActionLaunch).JustPressed)
	assert.True(t, GetAction(input, cfg.ActionLaunch).Pressed)

	recordActions(input, [cfg.ActionCount]bool{})
	assert.True(t, GetAction(input, cfg.ActionLaunch).JustReleased)
}

func TestPointerMotionScalesByWindowHeight(t *testing.T) {
	input := &components.InputData{}

	// The first sample only anchors the cursor.
	addPointerMotion(input, 100, 100, 720)
	assert.Zero(t, input.PointerDelta.Len())

	addPointerMotion(input, 172, 64, 720)
	assert.InDelta(t, -0.1, input.PointerDelta.X(), 1e-6)
	assert.InDelta(t, 0.05, input.PointerDelta.Y(), 1e-6)

	// Motion accumulates until the tick ends.
	addPointerMotion(input, 172+72, 64, 720)
	assert.InDelta(t, -0.2, input.PointerDelta.X(), 1e-6)
}

func TestClearInputEdges(t *testing.T) {
	e := newTestECS(t, &fakeSource{})
	input := getOrCreateInput(e)
	input.Downs[cfg.ActionLaunch] = 2
	input.Current[cfg.ActionMoveUp] = true
	input.PointerDelta[0] = 0.3

	ClearInputEdges(e)

	input = getOrCreateInput(e)
	assert.Zero(t, input.Downs[cfg.ActionLaunch])
	assert.Zero(t, input.PointerDelta.Len())
	assert.True(t, input.Current[cfg.ActionMoveUp], "held state survives")
}

func TestLaunchFiresOnPressTick(t *testing.T) {
	e := newTestECS(t, &fakeSource{})
	input := getOrCreateInput(e)

	var held [cfg.ActionCount]bool
	recordActions(input, held)
	WithGameplayChecks(UpdatePlayer)(e)
	ClearInputEdges(e)
	assert.Equal(t, flight.Grounded, playerOf(e).Phase)

	held[cfg.ActionLaunch] = true
	recordActions(input, held)
	assert.Equal(t, 1, input.Downs[cfg.ActionLaunch])
	WithGameplayChecks(UpdatePlayer)(e)
	ClearInputEdges(e)

	p := playerOf(e)
	assert.Equal(t, flight.Launched, p.Phase)
	assert.InDelta(t, cfg.Flight.LaunchSpeed, p.Velocity.Len(), 1e-3)

	// Still held on the next tick: no new press.
	recordActions(input, held)
	assert.Zero(t, input.Downs[cfg.ActionLaunch])
}

func TestPointerDeltaTurnsPlayer(t *testing.T) {
	e := newTestECS(t, &fakeSource{})
	getOrCreateInput(e).PointerDelta = [2]float32{0.25, 10}

	UpdatePlayer(e)

	p := playerOf(e)
	assert.InDelta(t, 0.25, p.Yaw, 1e-6)
	assert.InDelta(t, 1.5707964, p.Pitch, 1e-6, "pitch is clamped")
}

func TestControlHintFollowsDevice(t *testing.T) {
	assert.Equal(t, cfg.HUD.Hint, controlHint(components.InputKeyboard))
	assert.Equal(t, cfg.HUD.ControllerHint, controlHint(components.InputXbox))
	assert.Equal(t, cfg.HUD.ControllerHint, controlHint(components.InputPlayStation))
}
