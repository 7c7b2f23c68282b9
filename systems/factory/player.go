package factory

import (
	"github.com/automoto/wingflap/archetypes"
	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the flyer hovering at the start of the track.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.FlightPath.SetValue(player, components.FlightPathData{
		Rotation: mgl64.QuatIdent(),
	})
	components.Flight.SetValue(player, components.FlightData{
		Altitude:     cfg.Flight.HoverHeight,
		GravityScale: 1,
	})

	return player
}
