package factory

import (
	"github.com/automoto/blastoff/archetypes"
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity. The first level is loaded by the
// level system on its first run.
func CreateLevel(ecs *ecs.ECS, source components.LevelSource, start int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(level, components.LevelData{
		Grid:        leveldata.NewGrid(cfg.Level.Dimensions(), leveldata.InitialSpawn),
		Index:       start,
		Source:      source,
		PendingLoad: true,
	})
	components.LevelComplete.SetValue(level, components.LevelCompleteData{})

	return level
}

// CreateLevelWatch attaches file change notifications to the scene.
func CreateLevelWatch(ecs *ecs.ECS, events <-chan string, errs <-chan error) *donburi.Entry {
	entry := ecs.World.Entry(ecs.Create(cfg.Default, components.LevelWatch))
	components.LevelWatch.SetValue(entry, components.LevelWatchData{
		Events: events,
		Errors: errs,
	})
	return entry
}
