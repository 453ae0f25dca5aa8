package systems

import (
	"github.com/automoto/blastoff/components"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelWatch queues a reload when the file of the current level
// changes on disk. It never blocks.
func UpdateLevelWatch(e *ecs.ECS) {
	watchEntry, ok := components.LevelWatch.First(e.World)
	if !ok {
		return
	}
	watch := components.LevelWatch.Get(watchEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for {
		select {
		case name, ok := <-watch.Events:
			if !ok {
				watch.Events = nil
				continue
			}
			if name != leveldata.LevelFile(level.Index) {
				logrus.WithField("file", name).Debug("ignoring change to inactive level")
				continue
			}
			logrus.WithField("file", name).Info("level file changed, reloading")
			if !level.PendingLoad {
				level.PendingLoad = true
				level.Reload = true
			}
		case err, ok := <-watch.Errors:
			if !ok {
				watch.Errors = nil
				continue
			}
			logrus.WithError(err).Warn("level watcher")
		default:
			return
		}
	}
}
