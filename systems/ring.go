package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

var ringRand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// SeedRings makes ring heights repeatable.
func SeedRings(seed int64) {
	ringRand = rand.New(rand.NewPCG(uint64(seed), 0))
}

// ringRotation is the flight path rotation shifted ahead by the distance the
// player covers in one ring interval.
func ringRotation(path mgl64.Quat) mgl64.Quat {
	return gamemath.RotateY(path, cfg.Track.AngularSpeed*cfg.Ring.Interval)
}

func nextRingHeight() float64 {
	return cfg.Ring.MinHeight + ringRand.Float64()*cfg.Ring.HeightRange
}

// PlaceRing poses a newly found ring ahead of the player at the player's
// current altitude.
func PlaceRing(ring *components.RingData, path mgl64.Quat, altitude float64) {
	ring.Placed = true
	ring.Rotation = ringRotation(path)
	ring.Height = altitude
	ring.Scale = cfg.Ring.StartingScale
	ring.Timer = cfg.Ring.Interval
	ring.Label = 0
}

// ResetRing moves the ring to its starting pose for a new game.
func ResetRing(ring *components.RingData, path mgl64.Quat) {
	ring.Placed = true
	ring.Rotation = ringRotation(path)
	ring.Height = cfg.Ring.StartHeight
	ring.Scale = cfg.Ring.StartingScale
	ring.Timer = cfg.Ring.Interval
	ring.Label = 1
}

// AdvanceRing moves a passed ring to its next spot: ahead on the track, at a
// random height, a little smaller.
func AdvanceRing(ring *components.RingData, path mgl64.Quat, score int) {
	ring.Rotation = ringRotation(path)
	ring.Height = nextRingHeight()
	ring.Scale *= cfg.Ring.Shrink
	ring.Timer = cfg.Ring.Interval
	ring.Label = score + 1
}
