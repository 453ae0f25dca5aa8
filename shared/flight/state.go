// Package flight is the player simulation: walking on the launch platform,
// the one-shot launch, and free flight through gravity fields. It is a pure
// per-tick transform and has no dependencies on ebiten or donburi.
package flight

import (
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Phase uint8

const (
	Grounded Phase = iota
	Launched
)

func (p Phase) String() string {
	if p == Launched {
		return "launched"
	}
	return "grounded"
}

// Outcome reports what a tick did to the level as a whole.
type Outcome uint8

const (
	None Outcome = iota
	// SoftReset sends the player back to the platform of the same level.
	SoftReset
	// LevelAdvance sends the player to the next level.
	LevelAdvance
)

func (o Outcome) String() string {
	switch o {
	case SoftReset:
		return "soft reset"
	case LevelAdvance:
		return "level advance"
	}
	return "none"
}

// Params are the tuning constants of the simulation. ProbeHeight is how many
// tiles above the player the level is sampled.
type Params struct {
	LaunchSpeed  float32
	WalkSpeed    float32
	Gravity      float32
	BlastoffRate float32
	ProbeHeight  float32
	PlatformSize float32
	TileSize     float32
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		LaunchSpeed:  75,
		WalkSpeed:    30,
		Gravity:      150,
		BlastoffRate: 2,
		ProbeHeight:  1.5,
		PlatformSize: 40,
		TileSize:     10,
	}
}

// Controls is the input snapshot for one tick.
type Controls struct {
	Left, Right, Up, Down bool
	Launch                bool
}

// BlockSampler answers which block occupies a world position.
// *leveldata.Grid satisfies it.
type BlockSampler interface {
	BlockAt(x, y, z float32) leveldata.Block
}

// State is everything the simulation knows about the player.
type State struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Yaw is kept in [0, 2π); yaw 0 faces +y.
	Yaw float32
	// Pitch is kept in [-π/2, π/2].
	Pitch float32

	Phase           Phase
	LaunchProcessed bool

	// Blastoff is animation progress in [0, 1]: 0 on the ground, 1 in flight.
	Blastoff float32
}

// Reset puts the player back on the platform. Look angles are kept.
func (s *State) Reset() {
	s.Position = mgl32.Vec3{}
	s.Velocity = mgl32.Vec3{}
	s.Phase = Grounded
	s.LaunchProcessed = false
	s.Blastoff = 0
}

// Look applies a pointer delta, already scaled to radians, to the view.
func (s *State) Look(delta mgl32.Vec2) {
	s.Yaw += delta[0]
	s.Pitch = gamemath.Clamp(s.Pitch+delta[1], -math32.Pi/2, math32.Pi/2)
}

// LaunchVelocity is the impulse for launching along the given look angles.
// Its length is always speed.
func LaunchVelocity(yaw, pitch, speed float32) mgl32.Vec3 {
	return gamemath.LookDirection(yaw, pitch).Mul(speed)
}
