package archetypes

import (
	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Game is the singleton holding session-wide state.
	Game = newArchetype(
		tags.Game,
		components.Game,
		components.Frame,
		components.XRFrame,
		components.Profile,
		components.HUD,
		components.Input,
		components.Emulator,
		components.Audio,
	)
	Player = newArchetype(
		tags.Player,
		components.FlightPath,
		components.Flight,
		components.Flap,
		components.Wings,
	)
	Ring = newArchetype(
		tags.Ring,
		components.Ring,
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
