package flight

import (
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/shared/leveldata"
)

// Step advances the player by dt seconds.
//
// A launch is processed before the phase branch, so the tick that sees the
// launch signal already flies. Any reset outcome leaves s reset; the caller
// is responsible for loading the next level on LevelAdvance.
func Step(s *State, world BlockSampler, c Controls, dt float32, p Params) Outcome {
	s.Yaw = gamemath.WrapAngle(s.Yaw)

	if c.Launch && s.Phase == Grounded {
		s.Phase = Launched
	}
	if s.Phase == Launched && !s.LaunchProcessed {
		s.LaunchProcessed = true
		s.Velocity = LaunchVelocity(s.Yaw, s.Pitch, p.LaunchSpeed)
	}

	if s.Phase == Grounded {
		walk(s, c, dt, p)
		return None
	}
	return fly(s, world, dt, p)
}

func walk(s *State, c Controls, dt float32, p Params) {
	s.Blastoff = gamemath.Clamp01(s.Blastoff - p.BlastoffRate*dt)

	mv := gamemath.MoveVector(c.Left, c.Right, c.Down, c.Up, p.WalkSpeed, dt)
	mv = gamemath.RotateZ(mv, s.Yaw)

	half := p.PlatformSize / 2
	s.Position[0] = gamemath.Clamp(s.Position[0]+mv[0], -half, half)
	s.Position[1] = gamemath.Clamp(s.Position[1]+mv[1], -half, half)
}

func fly(s *State, world BlockSampler, dt float32, p Params) Outcome {
	s.Blastoff = gamemath.Clamp01(s.Blastoff + p.BlastoffRate*dt)
	s.Position = s.Position.Add(s.Velocity.Mul(dt))

	if world == nil {
		return None
	}

	probe := s.Position[2] + p.ProbeHeight*p.TileSize
	b := world.BlockAt(s.Position[0], s.Position[1], probe)
	switch b.Kind {
	case leveldata.Antimatter:
		s.Reset()
		return SoftReset
	case leveldata.Target:
		s.Reset()
		return LevelAdvance
	case leveldata.GravityField:
		switch b.Field {
		case leveldata.FieldDown:
			s.Velocity[2] -= p.Gravity * dt
		case leveldata.FieldUp:
			s.Velocity[2] += p.Gravity * dt
		}
	}
	return None
}
