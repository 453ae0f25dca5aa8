package systems

import (
	"github.com/automoto/blastoff/components"
	"github.com/automoto/blastoff/shared/flight"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// LevelEvent is published when a flight ends in antimatter or on a target.
type LevelEvent struct {
	Outcome flight.Outcome
	Level   int
	// Position is where the player was when the flight ended.
	Position mgl32.Vec3
}

var LevelEvents = events.NewEventType[LevelEvent]()

// SubscribeLevelEvents installs the level event handlers on a world.
func SubscribeLevelEvents(w donburi.World) {
	LevelEvents.Subscribe(w, OnLevelEvent)
}

// ProcessEvents delivers events published earlier in the tick.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// OnLevelEvent queues the next level after a target hit.
func OnLevelEvent(w donburi.World, ev LevelEvent) {
	fields := logrus.Fields{
		"level":    ev.Level,
		"position": ev.Position,
	}
	switch ev.Outcome {
	case flight.SoftReset:
		logrus.WithFields(fields).Info("hit antimatter, back to the platform")
	case flight.LevelAdvance:
		logrus.WithFields(fields).Info("reached target")
		entry, ok := components.Level.First(w)
		if !ok {
			return
		}
		level := components.Level.Get(entry)
		level.Index = ev.Level + 1
		level.PendingLoad = true
		level.Reload = false
	}
}
