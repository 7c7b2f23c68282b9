package factory

import (
	"github.com/automoto/wingflap/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRing spawns an unplaced ring; the game system poses it on the first
// update that finds it.
func CreateRing(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Ring.Spawn(ecs)
}
