package components

import (
	"github.com/automoto/blastoff/shared/flight"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	flight.State

	// Body is the astronaut model orientation. In flight it eases toward the
	// travel direction, so it carries over between ticks.
	Body         mgl32.Quat
	BodyPosition mgl32.Vec3
	LastOutcome  flight.Outcome
	Resets       int // soft resets on the current level
}

var Player = donburi.NewComponentType[PlayerData]()
