package systems

import (
	"fmt"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawTrack renders a top-down map of the circular flight path with the
// player and the next ring on it.
func DrawTrack(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Flight.First(e.World)
	if !ok {
		return
	}
	flight := components.Flight.Get(playerEntry)
	path := components.FlightPath.Get(playerEntry)

	r := cfg.HUD.MapRadius
	cx := float64(cfg.C.Width) - cfg.HUD.Margin - r
	cy := cfg.HUD.Margin + r
	scale := r / cfg.Track.Radius

	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, cfg.HUD.TrackColor, true)

	player := flight.WorldPosition(path.Rotation, cfg.Track.Radius)
	vector.DrawFilledCircle(screen, float32(cx+player.X()*scale), float32(cy+player.Z()*scale), 4, cfg.HUD.PlayerColor, true)

	if ringEntry, ok := components.Ring.First(e.World); ok {
		ring := components.Ring.Get(ringEntry)
		if ring.Placed {
			pos := ring.WorldPosition(cfg.Track.Radius)
			vector.StrokeCircle(screen, float32(cx+pos.X()*scale), float32(cy+pos.Z()*scale), 5, 2, cfg.HUD.RingColor, true)
		}
	}
}

// DrawGauge renders a side view of altitude with the ring's gate window and
// the time left before the ring is checked.
func DrawGauge(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Flight.First(e.World)
	if !ok {
		return
	}
	flight := components.Flight.Get(playerEntry)

	w := cfg.HUD.GaugeWidth
	h := cfg.HUD.GaugeHeight
	left := cfg.HUD.Margin
	bottom := float64(cfg.C.Height) - cfg.HUD.Margin
	toScreen := func(altitude float64) float64 {
		return bottom - altitude/cfg.HUD.GaugeMaxHeight*h
	}

	vector.StrokeRect(screen, float32(left), float32(bottom-h), float32(w), float32(h), 1, cfg.HUD.TrackColor, false)

	if ringEntry, ok := components.Ring.First(e.World); ok {
		ring := components.Ring.Get(ringEntry)
		if ring.Placed {
			top := toScreen(ring.Height + ring.Radius())
			low := toScreen(ring.Height - ring.Radius())
			vector.StrokeRect(screen, float32(left-4), float32(top), float32(w+8), float32(low-top), 2, cfg.HUD.RingColor, false)
			label := fmt.Sprintf("#%d %.1fs", ring.Label, max(ring.Timer, 0))
			text.Draw(screen, label, fonts.Small.Get(), int(left+w+8), int(toScreen(ring.Height)), cfg.HUD.RingColor)
		}
	}

	y := min(max(toScreen(flight.Altitude), bottom-h), bottom)
	vector.DrawFilledRect(screen, float32(left), float32(y-2), float32(w), 4, cfg.HUD.PlayerColor, false)
}

// DrawWings renders a front view of both wings, each a line from its anchor
// under the head out to the hand.
func DrawWings(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Wings.First(e.World)
	if !ok {
		return
	}
	wings := components.Wings.Get(playerEntry)

	const pixelsPerUnit = 80
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height)/2 + 40

	for _, hand := range components.Hands {
		pose := wings.Poses[hand]
		if !pose.Visible {
			continue
		}
		x0 := cx + pose.Position.X()*pixelsPerUnit
		y0 := cy - (pose.Position.Y()-cfg.Emulator.HeadHeight)*pixelsPerUnit
		x1 := cx + pose.Tip.X()*pixelsPerUnit
		y1 := cy - (pose.Tip.Y()-cfg.Emulator.HeadHeight)*pixelsPerUnit
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 6, cfg.HUD.WingColor, true)
		vector.DrawFilledCircle(screen, float32(x1), float32(y1), 5, cfg.HUD.WingColor, true)
	}
}
