package gamemath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// Pose is a position plus orientation. Cameras look down their local -z,
// so the identity rotation looks straight down.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// BlendPose lerps position and nlerps rotation from a toward b by t.
func BlendPose(a, b Pose, t float32) Pose {
	return Pose{
		Position: a.Position.Mul(1 - t).Add(b.Position.Mul(t)),
		Rotation: mgl32.QuatNlerp(a.Rotation, b.Rotation, t),
	}
}

// Viewer is the part of the player state the camera follows.
type Viewer struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Blastoff float32
	Launched bool
}

// ViewParams places the camera relative to the player. Heights are in tiles.
type ViewParams struct {
	TileSize float32
	// EyeHeight lifts the camera above the player's feet.
	EyeHeight float32
	// FlightLift is added on top of EyeHeight, scaled by blastoff progress.
	FlightLift float32
	// BodyLift raises the astronaut model, scaled by blastoff progress.
	BodyLift float32
	// OverviewHeight is the altitude and pull-back of the overview camera.
	OverviewHeight float32
	// GridCenter is the cell the overview camera is centred on.
	GridCenter int
}

// DefaultViewParams matches the 32-cell grid with 10-unit tiles.
func DefaultViewParams() ViewParams {
	return ViewParams{
		TileSize:       10,
		EyeHeight:      1.5,
		FlightLift:     10,
		BodyLift:       1.5,
		OverviewHeight: 150,
		GridCenter:     16,
	}
}

// GroundedRotation is the first-person camera orientation.
func GroundedRotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, axisZ).
		Mul(mgl32.QuatRotate(pitch, axisX)).
		Mul(mgl32.QuatRotate(math32.Pi/2, axisX)).
		Normalize()
}

// FlightRotation turns the camera from the look angles toward a top-down
// view aligned with the travel heading as blastoff goes from 0 to 1.
func FlightRotation(yaw, pitch float32, vel mgl32.Vec3, blastoff float32) mgl32.Quat {
	heading := WrapAngle(math32.Atan2(vel[1], vel[0]) - math32.Pi/2)
	return mgl32.QuatRotate(Lerp(yaw, heading, blastoff), axisZ).
		Mul(mgl32.QuatRotate(Lerp(pitch, -math32.Pi/2, blastoff), axisX)).
		Mul(mgl32.QuatRotate(math32.Pi/2, axisX)).
		Normalize()
}

// EyePose is the camera that follows the player, before any overview blend.
func EyePose(v Viewer, p ViewParams) Pose {
	lift := p.EyeHeight*p.TileSize + v.Blastoff*p.FlightLift*p.TileSize
	pose := Pose{Position: v.Position.Add(mgl32.Vec3{0, 0, lift})}
	if v.Launched {
		pose.Rotation = FlightRotation(v.Yaw, v.Pitch, v.Velocity, v.Blastoff)
	} else {
		pose.Rotation = GroundedRotation(v.Yaw, v.Pitch)
	}
	return pose
}

// OverviewPose is the fixed camera that shows the whole level. It tracks
// the level's spawn anchor so the grid stays framed.
func OverviewPose(spawnX, spawnY int, p ViewParams) Pose {
	return Pose{
		Position: mgl32.Vec3{
			-float32(spawnX-p.GridCenter) * p.TileSize,
			-p.OverviewHeight - float32(spawnY-p.GridCenter)*p.TileSize,
			p.OverviewHeight,
		},
		Rotation: mgl32.QuatRotate(-math32.Pi/4, axisX).
			Mul(mgl32.QuatRotate(math32.Pi/2, axisX)).
			Normalize(),
	}
}

// CameraPose blends the following camera toward the overview by preview.
func CameraPose(v Viewer, spawnX, spawnY int, preview float32, p ViewParams) Pose {
	return BlendPose(EyePose(v, p), OverviewPose(spawnX, spawnY, p), preview)
}

// BodyPose places the astronaut model. In flight the rotation eases from
// prev toward the travel orientation, so callers feed back the previous
// result each tick.
func BodyPose(prev mgl32.Quat, v Viewer, p ViewParams) Pose {
	pose := Pose{Position: v.Position.Add(mgl32.Vec3{0, 0, v.Blastoff * p.BodyLift * p.TileSize})}
	if !v.Launched {
		pose.Rotation = mgl32.QuatRotate(v.Yaw+math32.Pi, axisZ)
		return pose
	}

	b := v.Blastoff
	heading := math32.Atan2(v.Velocity[1], v.Velocity[0])
	climb := math32.Atan2(v.Velocity[2], math32.Hypot(v.Velocity[0], v.Velocity[1]))
	travel := mgl32.QuatRotate(WrapAngle(heading+math32.Pi/2), axisZ).
		Mul(mgl32.QuatRotate(Lerp(climb, -math32.Pi/2, b), axisX)).
		Mul(mgl32.QuatRotate(math32.Pi/2*(1+b), axisX)).
		Normalize()
	pose.Rotation = mgl32.QuatNlerp(prev, travel, b)
	return pose
}

// LightDirection points the light back along the look direction, so faces
// the player looks at are lit.
func LightDirection(yaw, pitch float32) mgl32.Vec3 {
	return LookDirection(yaw, pitch).Mul(-1)
}
