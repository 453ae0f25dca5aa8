package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preserve restores the global configuration after a test.
func preserve(t *testing.T) {
	t.Helper()
	c, fl, cam, lvl, r, hud, dbg := *C, Flight, Camera, Level, Render, HUD, Debug
	t.Cleanup(func() {
		*C, Flight, Camera, Level, Render, HUD, Debug = c, fl, cam, lvl, r, hud, dbg
	})
}

func TestApplyOverridesOnlyGivenKeys(t *testing.T) {
	preserve(t)

	err := Apply([]byte(`
flight:
  gravity: 300
level:
  dir: ./levels
  watch: true
  watch_debounce: 250ms
render:
  clear_color: {r: 10, g: 20, b: 30, a: 255}
debug:
  log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, float32(300), Flight.Gravity)
	assert.Equal(t, float32(75), Flight.LaunchSpeed)
	assert.Equal(t, "./levels", Level.Dir)
	assert.True(t, Level.Watch)
	assert.Equal(t, 250*time.Millisecond, Level.WatchDebounce)
	assert.Equal(t, 32, Level.Size)
	assert.Equal(t, uint8(20), Render.ClearColor.G)
	assert.Equal(t, "debug", Debug.LogLevel)
	assert.Equal(t, 1280, C.Width)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	preserve(t)

	cases := map[string]string{
		"tile size":  "level: {tile_size: 0}",
		"grid":       "level: {size: -1}",
		"start":      "level: {start: 0}",
		"fov":        "camera: {fov_y: 180}",
		"clip":       "camera: {near: 10, far: 5}",
		"window":     "window: {width: 0}",
		"bad margin": "level: {margin: -2}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			err := Apply([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	// Nothing was installed.
	assert.Equal(t, float32(10), Level.TileSize)
	assert.Equal(t, float32(70), Camera.FovY)
}

func TestApplyRejectsMalformedYAML(t *testing.T) {
	preserve(t)

	err := Apply([]byte("flight: [1, 2"))
	assert.ErrorContains(t, err, "parse yaml")
}

func TestLoadFile(t *testing.T) {
	preserve(t)

	path := filepath.Join(t.TempDir(), "blastoff.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera: {fov_y: 90}\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, float32(90), Camera.FovY)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDerivedParams(t *testing.T) {
	p := Flight.Params(Level.TileSize)
	assert.Equal(t, float32(10), p.TileSize)
	assert.Equal(t, float32(40), p.PlatformSize)

	v := Camera.ViewParams(Level.Dimensions())
	assert.Equal(t, 16, v.GridCenter)
	assert.Equal(t, float32(150), v.OverviewHeight)
}
