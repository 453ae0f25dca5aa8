package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/automoto/blastoff/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrLevelNotFound is kept in LevelData.Err when the start level has no file.
var ErrLevelNotFound = errors.New("level not found")

// UpdateLevel loads the level queued by a target hit, a file change or the
// scene start. Past the last level file the run is complete; a missing
// start level is an error.
func UpdateLevel(e *ecs.ECS) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	if !level.PendingLoad || level.Err != nil {
		return
	}
	level.PendingLoad = false
	reload := level.Reload
	level.Reload = false

	log := logrus.WithField("level", level.Index)

	if !level.Source.Has(level.Index) {
		if reload {
			log.Warn("level file is gone, keeping the loaded level")
			return
		}
		if level.Generation == 0 {
			level.Err = fmt.Errorf("start %s: %w", leveldata.LevelFile(level.Index), ErrLevelNotFound)
			log.WithError(level.Err).Error("level load failed")
			return
		}
		complete := components.LevelComplete.Get(entry)
		complete.IsComplete = true
		complete.LastIndex = level.Index - 1
		log.Info("no more levels, run complete")
		return
	}

	grid, err := level.Source.Load(level.Index)
	if err != nil {
		if reload {
			// Editors write files in several steps; the next change retries.
			log.WithError(err).Warn("reload failed, keeping the loaded level")
			return
		}
		level.Err = err
		log.WithError(err).Error("level load failed")
		return
	}

	installLevel(e, entry, grid, reload)
}

func installLevel(e *ecs.ECS, entry *donburi.Entry, grid *leveldata.Grid, reload bool) {
	level := components.Level.Get(entry)
	level.Grid = grid
	level.Generation++

	spawned := factory.SpawnBlocks(e, grid, level.Generation)
	logrus.WithFields(logrus.Fields{
		"level":      level.Index,
		"blocks":     grid.Count(),
		"entities":   spawned,
		"generation": level.Generation,
		"reload":     reload,
	}).Info("level installed")

	if reload {
		return
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		player.Reset()
		player.Resets = 0
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).InitialPreview = cfg.Camera.InitialPreview
	}
	factory.CreateBanner(e, fmt.Sprintf("Level %d", level.Index))
}
