package components

import (
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.Pose
	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	// Preview is the overview blend in [0, 1].
	Preview float32
	// InitialPreview counts down the forced overview after a level load.
	InitialPreview float32

	// Light points from the scene toward the light source.
	Light mgl32.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
