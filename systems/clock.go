package systems

import (
	"github.com/automoto/blastoff/archetypes"
	"github.com/automoto/blastoff/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const defaultDT = float32(1.0 / 60.0)

// UpdateClock records the fixed step for this tick. Runs first.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	clock.DT = 1 / float32(ebiten.TPS())
	clock.Ticks++
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
		components.Clock.SetValue(entry, components.ClockData{DT: defaultDT})
	}
	return components.Clock.Get(entry)
}

// deltaTime is the step of the current tick, or 1/60 s before the clock runs.
func deltaTime(e *ecs.ECS) float32 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return defaultDT
	}
	if dt := components.Clock.Get(entry).DT; dt > 0 {
		return dt
	}
	return defaultDT
}
