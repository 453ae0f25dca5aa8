package components

import (
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelSource loads numbered level files.
type LevelSource interface {
	Load(n int) (*leveldata.Grid, error)
	Has(n int) bool
}

type LevelData struct {
	Grid   *leveldata.Grid
	Index  int
	Source LevelSource

	// PendingLoad asks the level system to load Index on its next run.
	PendingLoad bool
	// Reload marks a pending load that re-reads the current level in place,
	// without the overview countdown or banner.
	Reload bool
	// Generation increments every time a grid is installed.
	Generation int
	// Err is a fatal load error. The scene stops the game loop with it.
	Err error
}

var Level = donburi.NewComponentType[LevelData]()

// LevelWatchData carries the channels of a level file watcher.
type LevelWatchData struct {
	Events <-chan string
	Errors <-chan error
}

var LevelWatch = donburi.NewComponentType[LevelWatchData]()
