package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FlightPathData is the yaw rotator the player rides around the track.
type FlightPathData struct {
	Rotation mgl64.Quat
}

var FlightPath = donburi.NewComponentType[FlightPathData]()
