package archetypes

import (
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Block,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Banner,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
