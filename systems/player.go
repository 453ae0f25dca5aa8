package systems

import (
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/flight"
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies look and movement input and steps the flight
// simulation against the current level.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(e)

	var grid *leveldata.Grid
	index := 0
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		grid = level.Grid
		index = level.Index
	}

	player.Look(input.PointerDelta)

	outcome := flight.Step(&player.State, grid, controls(input), deltaTime(e), cfg.Flight.Params(cfg.Level.TileSize))
	player.LastOutcome = outcome

	switch outcome {
	case flight.SoftReset:
		player.Resets++
	case flight.LevelAdvance:
		player.Resets = 0
	}
	if outcome != flight.None {
		LevelEvents.Publish(e.World, LevelEvent{
			Outcome:  outcome,
			Level:    index,
			Position: player.BodyPosition,
		})
	}

	updateBody(player)
}

// controls reads the movement actions. Launch fires on the tick the press
// began; holding it does not relaunch.
func controls(input *components.InputData) flight.Controls {
	return flight.Controls{
		Left:   GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:  GetAction(input, cfg.ActionMoveRight).Pressed,
		Up:     GetAction(input, cfg.ActionMoveUp).Pressed,
		Down:   GetAction(input, cfg.ActionMoveDown).Pressed,
		Launch: input.Downs[cfg.ActionLaunch] > 0,
	}
}

func updateBody(player *components.PlayerData) {
	pose := gamemath.BodyPose(player.Body, viewer(&player.State), cfg.Camera.ViewParams(cfg.Level.Dimensions()))
	player.Body = pose.Rotation
	player.BodyPosition = pose.Position
}

func viewer(s *flight.State) gamemath.Viewer {
	return gamemath.Viewer{
		Position: s.Position,
		Velocity: s.Velocity,
		Yaw:      s.Yaw,
		Pitch:    s.Pitch,
		Blastoff: s.Blastoff,
		Launched: s.Phase == flight.Launched,
	}
}
