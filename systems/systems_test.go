package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/blastoff/components"
	"github.com/automoto/blastoff/shared/flight"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/automoto/blastoff/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeSource serves grids from memory and records every load.
type fakeSource struct {
	grids map[int]*leveldata.Grid
	errs  map[int]error
	loads []int
}

func (f *fakeSource) Has(n int) bool {
	_, ok := f.grids[n]
	if !ok {
		_, ok = f.errs[n]
	}
	return ok
}

func (f *fakeSource) Load(n int) (*leveldata.Grid, error) {
	f.loads = append(f.loads, n)
	if err, ok := f.errs[n]; ok {
		return nil, fmt.Errorf("load %s: %w", leveldata.LevelFile(n), err)
	}
	g, ok := f.grids[n]
	if !ok {
		return nil, fmt.Errorf("load %s: missing", leveldata.LevelFile(n))
	}
	return g, nil
}

// gridWith returns a grid with the given blocks at grid-local cells.
func gridWith(blocks map[[3]int]leveldata.Block) *leveldata.Grid {
	g := leveldata.NewGrid(leveldata.DefaultDimensions, leveldata.LoadSpawn)
	for c, b := range blocks {
		g.Set(c[0], c[1], c[2], b)
	}
	return g
}

func newTestECS(t *testing.T, src components.LevelSource) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeLevelEvents(e.World)
	factory.CreateLevel(e, src, 1)
	factory.CreatePlayer(e)
	factory.CreateCamera(e)
	require.NoError(t, ValidateCameras(e.World))
	return e
}

// tick runs the scene's update order minus the systems that poll devices.
func tick(e *ecs.ECS) {
	UpdateLevelWatch(e)
	WithGameplayChecks(UpdatePlayer)(e)
	ProcessEvents(e)
	UpdateLevel(e)
	WithGameplayChecks(UpdateCamera)(e)
	UpdateBanner(e)
	UpdateLevelComplete(e)
	ClearInputEdges(e)
}

func levelOf(e *ecs.ECS) *components.LevelData {
	entry, _ := components.Level.First(e.World)
	return components.Level.Get(entry)
}

func completeOf(e *ecs.ECS) *components.LevelCompleteData {
	entry, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(entry)
}

func playerOf(e *ecs.ECS) *components.PlayerData {
	entry, _ := components.Player.First(e.World)
	return components.Player.Get(entry)
}

func cameraOf(e *ecs.ECS) *components.CameraData {
	entry, _ := components.Camera.First(e.World)
	return components.Camera.Get(entry)
}

func bannerTexts(e *ecs.ECS) []string {
	var texts []string
	components.Banner.Each(e.World, func(entry *donburi.Entry) {
		texts = append(texts, components.Banner.Get(entry).Text)
	})
	return texts
}

// flyInto puts the player in flight just below cell (x, y, z), so the next
// tick's probe lands inside it.
func flyInto(e *ecs.ECS, x, y, z int) {
	g := levelOf(e).Grid
	ox, oy, oz := g.CellOrigin(x, y, z)
	half := g.Dims.TileSize / 2
	p := playerOf(e)
	p.State = flight.State{
		Position:        mgl32.Vec3{ox + half, oy + half, oz + half - 1.5*g.Dims.TileSize - 1},
		Velocity:        mgl32.Vec3{0, 0, 10},
		Phase:           flight.Launched,
		LaunchProcessed: true,
		Blastoff:        1,
	}
}
