package factory

import (
	"github.com/automoto/blastoff/archetypes"
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{
		FovY:           mgl32.DegToRad(cfg.Camera.FovY),
		Aspect:         float32(cfg.C.Width) / float32(cfg.C.Height),
		Near:           cfg.Camera.Near,
		Far:            cfg.Camera.Far,
		InitialPreview: cfg.Camera.InitialPreview,
	}
	data.Rotation = mgl32.QuatIdent()
	components.Camera.SetValue(camera, data)
	return camera
}
