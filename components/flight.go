package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FlightData is the player's vertical motion. Only the flight controller
// writes it, except for the game-over reset of Altitude.
type FlightData struct {
	Altitude  float64
	VertSpeed float64

	// Previous hand heights for flap speed, tracked separately from the lobby strokes
	LastHandY    [HandCount]float64
	HasLastHandY [HandCount]bool

	WingAngles   [HandCount]float64
	FlapSpeed    float64 // summed downward hand speed of the last frame
	GravityScale float64 // multiplier applied to gravity in the last frame
}

// WorldPosition returns the player's position for a track rotation.
func (f *FlightData) WorldPosition(rotation mgl64.Quat, radius float64) mgl64.Vec3 {
	return rotation.Rotate(mgl64.Vec3{0, f.Altitude, radius})
}

var Flight = donburi.NewComponentType[FlightData]()

// WingPose is the visual transform of one wing in player space.
type WingPose struct {
	Visible     bool
	Position    mgl64.Vec3 // anchor below the head
	Orientation mgl64.Quat
	Scale       mgl64.Vec3 // left wing is mirrored on X
	Tip         mgl64.Vec3 // controller position the wing points at
}

type WingsData struct {
	Poses [HandCount]WingPose
}

var Wings = donburi.NewComponentType[WingsData]()
