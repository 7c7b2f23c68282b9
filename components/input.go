package components

import (
	cfg "github.com/automoto/wingflap/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// emulator actions, plus analog stick readings per hand.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Stick    [HandCount]float64 // vertical stick per hand, -1 (up) to 1 (down)
	HasStick [HandCount]bool    // stick outside the deadzone this frame
}

var Input = donburi.NewComponentType[InputData]()

// EmulatorData is the simulated hand state between frames.
type EmulatorData struct {
	HandY      [HandCount]float64
	Presenting bool
}

var Emulator = donburi.NewComponentType[EmulatorData]()
