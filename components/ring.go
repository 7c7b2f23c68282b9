package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RingData is the scoring gate. Its pose hangs off a rotator that mirrors the
// flight path, shifted ahead by one ring interval.
type RingData struct {
	Placed   bool       // set once the spawner has posed the ring for the first time
	Rotation mgl64.Quat // ring rotator
	Height   float64
	Scale    float64 // diameter
	Timer    float64 // seconds until the ring is checked
	Label    int     // number shown on the ring
}

// Radius is half the ring's scale.
func (r *RingData) Radius() float64 {
	return r.Scale / 2
}

// WorldPosition returns the ring center on a track of the given radius.
func (r *RingData) WorldPosition(trackRadius float64) mgl64.Vec3 {
	return r.Rotation.Rotate(mgl64.Vec3{0, r.Height, trackRadius})
}

var Ring = donburi.NewComponentType[RingData]()
