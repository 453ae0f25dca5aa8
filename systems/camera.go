package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrCameraCount = errors.New("camera count")

// ValidateCameras checks that the world holds exactly one camera.
func ValidateCameras(w donburi.World) error {
	n := 0
	components.Camera.Each(w, func(*donburi.Entry) {
		n++
	})
	if n != 1 {
		return fmt.Errorf("expecting scene to have exactly one camera, but it has %d: %w", n, ErrCameraCount)
	}
	return nil
}

// UpdateCamera blends the player camera toward the level overview while the
// preview action is held or the post-load countdown runs.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	dt := deltaTime(e)

	camera.Preview, camera.InitialPreview = gamemath.UpdatePreview(
		camera.Preview,
		camera.InitialPreview,
		GetAction(input, cfg.ActionPreview).Pressed,
		cfg.Camera.PreviewRate,
		dt,
	)

	spawn := leveldata.InitialSpawn
	if levelEntry, ok := components.Level.First(e.World); ok {
		if grid := components.Level.Get(levelEntry).Grid; grid != nil {
			spawn = grid.Spawn
		}
	}

	var v gamemath.Viewer
	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		v = viewer(&player.State)
	}

	view := cfg.Camera.ViewParams(cfg.Level.Dimensions())
	camera.Pose = gamemath.CameraPose(v, spawn.X, spawn.Y, camera.Preview, view)
	camera.Light = gamemath.LightDirection(v.Yaw, v.Pitch)
	camera.FovY = mgl32.DegToRad(cfg.Camera.FovY)
	camera.Near = cfg.Camera.Near
	camera.Far = cfg.Camera.Far
}
