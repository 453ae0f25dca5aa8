package factory

import (
	"github.com/automoto/blastoff/archetypes"
	"github.com/automoto/blastoff/components"
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/automoto/blastoff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// SpawnBlocks replaces every block and arrow entity with the placements of
// grid. It returns the number of entities created.
func SpawnBlocks(ecs *ecs.ECS, grid *leveldata.Grid, generation int) int {
	var stale []donburi.Entity
	components.Block.Each(ecs.World, func(entry *donburi.Entry) {
		stale = append(stale, entry.Entity())
	})
	for _, ent := range stale {
		ecs.World.Remove(ent)
	}

	placements := leveldata.Placements(grid)
	for _, p := range placements {
		arch := archetypes.Block
		if p.Arrow {
			arch = archetypes.Arrow
		}
		entry := arch.Spawn(ecs)
		components.Block.SetValue(entry, components.BlockData{
			Placement:  p,
			Generation: generation,
		})
	}
	return len(placements)
}

// CountBlocks returns how many block and arrow entities exist.
func CountBlocks(ecs *ecs.ECS) (blocks, arrows int) {
	blocks = donburi.NewQuery(filter.Contains(tags.Block)).Count(ecs.World)
	arrows = donburi.NewQuery(filter.Contains(tags.Arrow)).Count(ecs.World)
	return
}
