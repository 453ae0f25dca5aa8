package factory

import (
	"github.com/automoto/blastoff/archetypes"
	"github.com/automoto/blastoff/components"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the astronaut on the launch platform facing +y.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Body: mgl32.QuatIdent(),
	})
	return player
}
