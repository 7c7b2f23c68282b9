package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Hand indexes the two tracked controllers
type Hand int

const (
	HandLeft Hand = iota
	HandRight
	HandCount // Must be last - used for array sizing
)

// Hands lists every hand in evaluation order
var Hands = [HandCount]Hand{HandLeft, HandRight}

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "none"
	}
}

// ControllerSample is one frame's reading of a hand controller in player space.
type ControllerSample struct {
	Connected bool
	Position  mgl64.Vec3
}

// XRFrameData is the per-frame input coming from the headset session (or its
// desktop emulator). Positions are in the player's local space.
type XRFrameData struct {
	Presenting  bool
	Head        mgl64.Vec3
	Controllers [HandCount]ControllerSample
}

var XRFrame = donburi.NewComponentType[XRFrameData]()
