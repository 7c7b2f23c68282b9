package systems

import (
	"log"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGame runs the lobby/in-game state machine. In the lobby it counts
// flap strokes until the player has flapped enough to start; in game it
// checks the player against the ring each time the ring timer runs out.
func UpdateGame(e *ecs.ECS) {
	gameEntry, ok := getGame(e)
	if !ok {
		return
	}
	playerEntry, ok := components.Flight.First(e.World)
	if !ok {
		return
	}

	game := components.Game.Get(gameEntry)
	xr := components.XRFrame.Get(gameEntry)
	hud := components.HUD.Get(gameEntry)
	flight := components.Flight.Get(playerEntry)
	path := components.FlightPath.Get(playerEntry)

	// The ring is optional until the scene provides one
	var ring *components.RingData
	if ringEntry, ok := components.Ring.First(e.World); ok {
		ring = components.Ring.Get(ringEntry)
		if !ring.Placed {
			PlaceRing(ring, path.Rotation, flight.Altitude)
		}
	}

	hud.ScoreboardVisible = false

	switch game.State {
	case cfg.GameStateLobby:
		if !xr.Presenting {
			return
		}
		hud.ScoreboardVisible = true
		flap := components.Flap.Get(playerEntry)
		flapped, ready := countFlaps(flap, xr)
		if ready {
			startGame(game, flap, ring, path.Rotation)
			queueSFX(e, cfg.SoundStart)
		} else if flapped {
			queueSFX(e, cfg.SoundFlap)
		}

	case cfg.GameStateInGame:
		if ring == nil {
			return
		}
		delta := frameDelta(gameEntry)
		if delta <= 0 {
			return
		}
		ring.Timer -= delta
		if ring.Timer >= 0 {
			return
		}
		if gamemath.WithinRadius(flight.Altitude, ring.Height, ring.Scale) {
			passRing(game, ring, path.Rotation, hud)
			queueSFX(e, cfg.SoundRingPass)
		} else {
			endGame(game, flight, components.Profile.Get(gameEntry), hud)
			queueSFX(e, cfg.SoundGameOver)
		}
	}
}

// countFlaps feeds this frame's hand heights to the stroke trackers. It
// reports whether a stroke counted as a flap this frame and whether either hand
// has flapped enough to start. Hands are checked in order and the scan stops
// at the first one that qualifies.
func countFlaps(flap *components.FlapData, xr *components.XRFrameData) (flapped, ready bool) {
	for _, hand := range components.Hands {
		controller := xr.Controllers[hand]
		if !controller.Connected {
			continue
		}
		stroke := &flap.Hands[hand]
		if stroke.Observe(controller.Position.Y(), cfg.Flap.StrokeDistance, cfg.Flap.CancelDistance) {
			flapped = true
		}
		if stroke.Flaps >= cfg.Flap.FlapsToStart {
			return flapped, true
		}
	}
	return flapped, false
}

func startGame(game *components.GameData, flap *components.FlapData, ring *components.RingData, path mgl64.Quat) {
	game.State = cfg.GameStateInGame
	game.Score = 0
	flap.Reset()
	if ring != nil {
		ResetRing(ring, path)
	}
	log.Printf("Game started")
}

func passRing(game *components.GameData, ring *components.RingData, path mgl64.Quat, hud *components.HUDData) {
	game.Score++
	AdvanceRing(ring, path, game.Score)
	popScore(hud)
}

// endGame returns to the lobby, keeping the final score for the scoreboard
// and saving it when it beats the record. A record that has not loaded yet
// counts as 0.
func endGame(game *components.GameData, flight *components.FlightData, p *components.ProfileData, hud *components.HUDData) {
	score := game.Score
	hud.LastScore = score
	if score > p.Record {
		p.Record = score
		saveRecord(score)
		log.Printf("New record: %d", score)
	}
	log.Printf("Game over with score %d", score)

	game.State = cfg.GameStateLobby
	game.Score = 0
	flight.Altitude = cfg.Flight.HoverHeight
}
