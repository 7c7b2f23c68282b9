package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical emulator action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFlapLeft
	ActionFlapRight
	ActionFlapBoth
	ActionSpreadLeft
	ActionSpreadRight
	ActionToggleSession
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.15,
		Bindings: map[ActionID]InputBinding{
			ActionFlapLeft: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// L2 / LT (left stick vertical handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionFlapRight: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				// R2 / RT (right stick vertical handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionFlapBoth: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionSpreadLeft: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyQ},
				// L1 / LB
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionSpreadRight: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyE},
				// R1 / RB
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionToggleSession: {
				Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEnter},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
