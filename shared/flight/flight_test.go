package flight

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSampler reports the same block everywhere.
type constSampler leveldata.Block

func (c constSampler) BlockAt(_, _, _ float32) leveldata.Block { return leveldata.Block(c) }

var emptySpace = constSampler(leveldata.EmptyBlock)

// levelWith decodes a single-floor level with one coloured pixel at (5, 5).
func levelWith(t *testing.T, c color.Color) *leveldata.Grid {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.Black)
		}
	}
	img.Set(5, 5, c)
	g, err := leveldata.Decode(img, leveldata.DefaultDimensions)
	require.NoError(t, err)
	return g
}

// inFlightBelow returns a state that flies up into the probe point above
// the centre of cell (x, y, z) during the next 0.1s tick.
func inFlightBelow(g *leveldata.Grid, x, y, z int, p Params) State {
	ox, oy, oz := g.CellOrigin(x, y, z)
	half := g.Dims.TileSize / 2
	probeOffset := p.ProbeHeight * p.TileSize
	return State{
		Position:        mgl32.Vec3{ox + half, oy + half, oz + half - probeOffset - 1},
		Velocity:        mgl32.Vec3{0, 0, 10},
		Yaw:             1,
		Pitch:           0.3,
		Phase:           Launched,
		LaunchProcessed: true,
		Blastoff:        0.5,
	}
}

func TestLaunchVelocityMagnitude(t *testing.T) {
	for yaw := float32(-7); yaw <= 7; yaw += 0.37 {
		for pitch := float32(-math32.Pi / 2); pitch <= math32.Pi/2; pitch += 0.13 {
			v := LaunchVelocity(yaw, pitch, 75)
			assert.InDelta(t, 75, v.Len(), 1e-3, "yaw %v pitch %v", yaw, pitch)
		}
	}
}

func TestLaunchDirection(t *testing.T) {
	v := LaunchVelocity(0, 0, 75)
	assert.InDelta(t, 0, v.X(), 1e-4)
	assert.InDelta(t, 75, v.Y(), 1e-4)
	assert.InDelta(t, 0, v.Z(), 1e-4)

	v = LaunchVelocity(0, float32(math32.Pi/2), 75)
	assert.InDelta(t, 75, v.Z(), 1e-4)

	// Yaw turns counter-clockwise: a quarter turn faces -x.
	v = LaunchVelocity(float32(math32.Pi/2), 0, 75)
	assert.InDelta(t, -75, v.X(), 1e-4)
}

func TestLaunchIsProcessedOnce(t *testing.T) {
	p := DefaultParams()
	s := State{Yaw: 0.4, Pitch: 0.2}

	out := Step(&s, emptySpace, Controls{Launch: true}, 0.016, p)
	assert.Equal(t, None, out)
	require.Equal(t, Launched, s.Phase)
	assert.True(t, s.LaunchProcessed)

	want := LaunchVelocity(0.4, 0.2, p.LaunchSpeed)
	assert.Equal(t, want, s.Velocity)
	// The launch tick already integrates.
	assert.InDelta(t, want.Y()*0.016, s.Position.Y(), 1e-5)

	s.Yaw, s.Pitch = 2, -1
	Step(&s, emptySpace, Controls{Launch: true}, 0.016, p)
	assert.Equal(t, want, s.Velocity)
}

func TestWalkDiagonalIsNormalized(t *testing.T) {
	p := DefaultParams()
	const dt = 0.5

	for _, yaw := range []float32{0, 0.7, 3, 5.5} {
		s := State{Yaw: yaw}
		Step(&s, emptySpace, Controls{Right: true, Up: true}, dt, p)
		assert.InDelta(t, p.WalkSpeed*dt, s.Position.Len(), 1e-4, "yaw %v", yaw)

		single := State{Yaw: yaw}
		Step(&single, emptySpace, Controls{Right: true}, dt, p)
		assert.InDelta(t, p.WalkSpeed*dt, single.Position.Len(), 1e-4, "yaw %v", yaw)
	}
}

func TestWalkDirections(t *testing.T) {
	p := DefaultParams()

	s := State{}
	Step(&s, emptySpace, Controls{Up: true}, 0.1, p)
	assert.InDelta(t, 3, s.Position.Y(), 1e-5)
	assert.InDelta(t, 0, s.Position.X(), 1e-5)

	s = State{}
	Step(&s, emptySpace, Controls{Left: true}, 0.1, p)
	assert.InDelta(t, -3, s.Position.X(), 1e-5)

	// Opposing buttons cancel.
	s = State{}
	Step(&s, emptySpace, Controls{Left: true, Right: true, Up: true, Down: true}, 0.1, p)
	assert.Equal(t, mgl32.Vec3{}, s.Position)
}

func TestWalkIsClampedToPlatform(t *testing.T) {
	p := DefaultParams()
	s := State{Yaw: 0.3}
	for i := 0; i < 50; i++ {
		Step(&s, emptySpace, Controls{Up: true, Left: true}, 0.2, p)
	}
	half := p.PlatformSize / 2
	assert.Equal(t, -half, s.Position.X())
	assert.Equal(t, half, s.Position.Y())
	assert.Zero(t, s.Position.Z())
	assert.Equal(t, Grounded, s.Phase)
}

func TestProgressStaysInUnitRange(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(7))
	dts := []float32{0, 1e-6, 0.016, 0.5, 3, 1e6}

	s := State{}
	for i := 0; i < 500; i++ {
		c := Controls{
			Left:   rng.Intn(2) == 0,
			Up:     rng.Intn(2) == 0,
			Launch: rng.Intn(10) == 0,
		}
		dt := dts[rng.Intn(len(dts))]
		Step(&s, emptySpace, c, dt, p)
		assert.GreaterOrEqual(t, s.Blastoff, float32(0))
		assert.LessOrEqual(t, s.Blastoff, float32(1))
		if i%50 == 0 {
			s.Reset()
		}
	}

	s = State{}
	Step(&s, emptySpace, Controls{Launch: true}, 1e6, p)
	assert.Equal(t, float32(1), s.Blastoff)
}

func TestAntimatterSoftReset(t *testing.T) {
	p := DefaultParams()
	g := levelWith(t, color.RGBA{R: 255, A: 255})
	s := inFlightBelow(g, 5, 5, 0, p)

	out := Step(&s, g, Controls{}, 0.1, p)
	assert.Equal(t, SoftReset, out)
	assert.Equal(t, mgl32.Vec3{}, s.Position)
	assert.Equal(t, mgl32.Vec3{}, s.Velocity)
	assert.Equal(t, Grounded, s.Phase)
	assert.False(t, s.LaunchProcessed)
	assert.Zero(t, s.Blastoff)
	// Look angles survive a reset.
	assert.Equal(t, float32(1), s.Yaw)
	assert.Equal(t, float32(0.3), s.Pitch)
}

func TestTargetAdvancesLevel(t *testing.T) {
	p := DefaultParams()
	g := levelWith(t, color.RGBA{R: 255, G: 255, A: 255})
	s := inFlightBelow(g, 5, 5, 0, p)

	out := Step(&s, g, Controls{}, 0.1, p)
	assert.Equal(t, LevelAdvance, out)
	assert.Equal(t, mgl32.Vec3{}, s.Position)
	assert.Equal(t, Grounded, s.Phase)
}

func TestFlightMissesOffsetBlock(t *testing.T) {
	p := DefaultParams()
	g := levelWith(t, color.RGBA{R: 255, A: 255})
	s := inFlightBelow(g, 6, 5, 0, p)

	out := Step(&s, g, Controls{}, 0.1, p)
	assert.Equal(t, None, out)
	assert.Equal(t, Launched, s.Phase)
}

func TestGravityFields(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		name  string
		block leveldata.Block
		dvz   float32
	}{
		{"down", leveldata.FieldBlock(0), -p.Gravity * 0.1},
		{"up", leveldata.FieldBlock(1), p.Gravity * 0.1},
		{"inert", leveldata.FieldBlock(4), 0},
		{"grass", leveldata.GrassBlock, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := State{Phase: Launched, LaunchProcessed: true, Velocity: mgl32.Vec3{1, 2, 3}}
			out := Step(&s, constSampler(tc.block), Controls{}, 0.1, p)
			assert.Equal(t, None, out)
			assert.InDelta(t, 3+tc.dvz, s.Velocity.Z(), 1e-4)
			assert.Equal(t, float32(1), s.Velocity.X())
			// Position integrates the velocity from before the field.
			assert.InDelta(t, 0.3, s.Position.Z(), 1e-5)
		})
	}
}

func TestLookClampsPitch(t *testing.T) {
	s := State{}
	s.Look(mgl32.Vec2{0.5, 3})
	assert.Equal(t, float32(math32.Pi/2), s.Pitch)
	assert.Equal(t, float32(0.5), s.Yaw)

	s.Look(mgl32.Vec2{-1, -10})
	assert.Equal(t, float32(-math32.Pi/2), s.Pitch)

	// Yaw is wrapped on the next tick.
	Step(&s, emptySpace, Controls{}, 0.016, DefaultParams())
	assert.InDelta(t, 2*math32.Pi-0.5, s.Yaw, 1e-5)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "level advance", LevelAdvance.String())
	assert.Equal(t, "launched", Launched.String())
}
