package systems

import (
	"testing"

	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/automoto/blastoff/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestValidateCameras(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	err := ValidateCameras(e.World)
	assert.ErrorIs(t, err, ErrCameraCount)
	assert.ErrorContains(t, err, "has 0")

	factory.CreateCamera(e)
	assert.NoError(t, ValidateCameras(e.World))

	factory.CreateCamera(e)
	assert.ErrorContains(t, ValidateCameras(e.World), "exactly one camera, but it has 2")
}

func TestPreviewHeldBlendsToOverview(t *testing.T) {
	src := &fakeSource{grids: map[int]*leveldata.Grid{1: gridWith(nil)}}
	e := newTestECS(t, src)
	tick(e)

	// Let the post-load countdown run out.
	for cameraOf(e).InitialPreview > 0 {
		tick(e)
	}
	for i := 0; i < 60; i++ {
		tick(e)
	}
	cam := cameraOf(e)
	require.Zero(t, cam.Preview)
	eye := gamemath.EyePose(gamemath.Viewer{}, cfg.Camera.ViewParams(cfg.Level.Dimensions()))
	assert.True(t, cam.Position.ApproxEqualThreshold(eye.Position, 1e-3))

	getOrCreateInput(e).Current[cfg.ActionPreview] = true
	for i := 0; i < 60; i++ {
		tick(e)
	}
	cam = cameraOf(e)
	assert.Equal(t, float32(1), cam.Preview)

	spawn := levelOf(e).Grid.Spawn
	overview := gamemath.OverviewPose(spawn.X, spawn.Y, cfg.Camera.ViewParams(cfg.Level.Dimensions()))
	assert.True(t, cam.Position.ApproxEqualThreshold(overview.Position, 1e-3))
	assert.InDelta(t, mgl32.DegToRad(cfg.Camera.FovY), cam.FovY, 1e-6)
}

func TestCameraLightFacesAwayFromLook(t *testing.T) {
	e := newTestECS(t, &fakeSource{})
	p := playerOf(e)
	p.Yaw, p.Pitch = 0.7, -0.2

	UpdateCamera(e)

	look := gamemath.LookDirection(0.7, -0.2)
	assert.InDelta(t, -1, cameraOf(e).Light.Dot(look), 1e-5)
}

func TestDebugLinesDescribeState(t *testing.T) {
	src := &fakeSource{grids: map[int]*leveldata.Grid{
		1: gridWith(map[[3]int]leveldata.Block{{8, 16, 7}: leveldata.GrassBlock}),
	}}
	e := newTestECS(t, src)
	tick(e)

	lines := debugLines(e)
	require.Len(t, lines, 6)
	assert.Equal(t, "level 1  gen 1  blocks 1  arrows 0", lines[0])
	assert.Contains(t, lines[1], "phase grounded")
}
