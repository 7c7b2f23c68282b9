package systems

import (
	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlightPath turns the player's rotator around the track.
func UpdateFlightPath(e *ecs.ECS) {
	gameEntry, ok := getGame(e)
	if !ok {
		return
	}
	delta := frameDelta(gameEntry)
	if delta <= 0 {
		return
	}

	components.FlightPath.Each(e.World, func(entry *donburi.Entry) {
		path := components.FlightPath.Get(entry)
		path.Rotation = gamemath.RotateY(path.Rotation, cfg.Track.AngularSpeed*delta)
	})
}
