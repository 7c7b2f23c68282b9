package systems

import (
	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlight turns hand motion into lift and integrates the player's
// altitude. Outside of play the player hovers at a fixed height.
func UpdateFlight(e *ecs.ECS) {
	gameEntry, ok := getGame(e)
	if !ok {
		return
	}
	game := components.Game.Get(gameEntry)
	xr := components.XRFrame.Get(gameEntry)
	delta := frameDelta(gameEntry)

	components.Flight.Each(e.World, func(entry *donburi.Entry) {
		flight := components.Flight.Get(entry)

		if !xr.Presenting {
			hover(flight)
			return
		}
		if delta <= 0 {
			return
		}

		var wings *components.WingsData
		if entry.HasComponent(components.Wings) {
			wings = components.Wings.Get(entry)
		}

		flapSpeed := 0.0
		wingAngle := 0.0
		for _, hand := range components.Hands {
			controller := xr.Controllers[hand]
			if !controller.Connected {
				flight.HasLastHandY[hand] = false
				flight.WingAngles[hand] = 0
				if wings != nil {
					wings.Poses[hand].Visible = false
				}
				continue
			}

			y := controller.Position.Y()
			if flight.HasLastHandY[hand] {
				flapSpeed += gamemath.FlapSpeed(flight.LastHandY[hand], y, delta)
			}
			flight.LastHandY[hand] = y
			flight.HasLastHandY[hand] = true

			pose := poseWing(hand, xr.Head, controller.Position)
			if wings != nil {
				wings.Poses[hand] = pose
			}
			angle := gamemath.WingAngle(pose.Position.X(), pose.Position.Y(), controller.Position.X(), controller.Position.Y())
			flight.WingAngles[hand] = angle
			wingAngle += angle
		}

		scale := gamemath.GravityMultiplier(wingAngle, cfg.Flight.GlideAngle, cfg.Flight.FullAngle, cfg.Flight.GlideGravity)
		flight.FlapSpeed = flapSpeed
		flight.GravityScale = scale

		if game.State != cfg.GameStateInGame {
			hover(flight)
			return
		}

		flight.Altitude, flight.VertSpeed = gamemath.Integrate(
			flight.Altitude,
			flight.VertSpeed,
			cfg.Flight.Gravity*scale,
			flapSpeed*cfg.Flight.FlapSpeedMultiplier,
			delta,
		)
	})
}

func hover(flight *components.FlightData) {
	flight.Altitude = cfg.Flight.HoverHeight
	flight.VertSpeed = 0
}

// poseWing anchors a wing just below the head and points it at the hand.
func poseWing(hand components.Hand, head, controller mgl64.Vec3) components.WingPose {
	anchor := head.Sub(mgl64.Vec3{0, cfg.Flight.WingDrop, 0})
	scale := mgl64.Vec3{1, 1, 1}
	if hand == components.HandLeft {
		scale = mgl64.Vec3{-1, 1, 1}
	}
	return components.WingPose{
		Visible:     true,
		Position:    anchor,
		Orientation: gamemath.LookAt(anchor, controller),
		Scale:       scale,
		Tip:         controller,
	}
}
