package systems

import (
	"math"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Stick axis feeding each hand
var handSticks = [components.HandCount]ebiten.StandardGamepadAxis{
	components.HandLeft:  ebiten.StandardGamepadAxisLeftStickVertical,
	components.HandRight: ebiten.StandardGamepadAxisRightStickVertical,
}

// UpdateEmulator stands in for a headset session on desktop: keys and
// gamepads move two virtual hands, and the result is published as the XR
// frame every other system reads. Must run after UpdateFrame.
func UpdateEmulator(e *ecs.ECS) {
	entry, ok := getGame(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	pollInput(input)
	applyEmulator(input, components.Emulator.Get(entry), components.XRFrame.Get(entry), frameDelta(entry))
}

// pollInput swaps input buffers and reads keys, buttons and sticks.
func pollInput(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.HasStick = [components.HandCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, hand := range components.Hands {
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			v := ebiten.StandardGamepadAxisValue(gpID, handSticks[hand])
			if math.Abs(v) > deadzone {
				input.Stick[hand] = v
				input.HasStick[hand] = true
				break
			}
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func applyEmulator(input *components.InputData, emu *components.EmulatorData, xr *components.XRFrameData, delta float64) {
	if GetAction(input, cfg.ActionToggleSession).JustPressed {
		emu.Presenting = !emu.Presenting
	}

	both := input.Current[cfg.ActionFlapBoth]
	flap := [components.HandCount]bool{
		components.HandLeft:  both || input.Current[cfg.ActionFlapLeft],
		components.HandRight: both || input.Current[cfg.ActionFlapRight],
	}
	spread := [components.HandCount]bool{
		components.HandLeft:  input.Current[cfg.ActionSpreadLeft],
		components.HandRight: input.Current[cfg.ActionSpreadRight],
	}

	for _, hand := range components.Hands {
		if input.HasStick[hand] {
			emu.HandY[hand] = stickHeight(input.Stick[hand])
			continue
		}
		emu.HandY[hand] = approach(emu.HandY[hand], handTarget(flap[hand], spread[hand]), cfg.Emulator.HandSpeed*delta)
	}

	xr.Presenting = emu.Presenting
	xr.Head = mgl64.Vec3{0, cfg.Emulator.HeadHeight, 0}
	for _, hand := range components.Hands {
		x := cfg.Emulator.ShoulderSpan
		if hand == components.HandLeft {
			x = -x
		}
		xr.Controllers[hand] = components.ControllerSample{
			Connected: emu.Presenting,
			Position:  mgl64.Vec3{x, emu.HandY[hand], -0.3},
		}
	}
}

// handTarget is where a key-driven hand is heading: down while flapping, up
// to wing level while spreading, otherwise hanging at rest.
func handTarget(flap, spread bool) float64 {
	switch {
	case flap:
		return cfg.Emulator.FlapHeight
	case spread:
		return cfg.Emulator.SpreadHeight
	default:
		return cfg.Emulator.RestHeight
	}
}

// stickHeight maps a stick deflection, -1 (up) to 1 (down), onto the range
// between a spread wing and the bottom of a flap.
func stickHeight(axis float64) float64 {
	axis = math.Max(-1, math.Min(1, axis))
	if axis < 0 {
		return cfg.Emulator.RestHeight - axis*(cfg.Emulator.SpreadHeight-cfg.Emulator.RestHeight)
	}
	return cfg.Emulator.RestHeight - axis*(cfg.Emulator.RestHeight-cfg.Emulator.FlapHeight)
}

// approach moves cur toward target by at most step.
func approach(cur, target, step float64) float64 {
	if step <= 0 {
		return cur
	}
	if math.Abs(target-cur) <= step {
		return target
	}
	if target > cur {
		return cur + step
	}
	return cur - step
}
