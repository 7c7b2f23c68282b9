package gamemath

import "math"

// GravityMultiplier maps the summed wing angle (radians) to the share of
// gravity that applies. Spread wings glide at glideGravity, wings held at
// fullAngle or steeper fall at full gravity, and the ramp between them is
// linear so both boundaries are continuous.
func GravityMultiplier(wingAngle, glideAngle, fullAngle, glideGravity float64) float64 {
	if wingAngle < glideAngle {
		return glideGravity
	}
	if wingAngle < fullAngle {
		return glideGravity + (wingAngle-glideAngle)/(fullAngle-glideAngle)*(1-glideGravity)
	}
	return 1
}

// WingAngle returns the elevation of a wing pointing from anchor to hand,
// folded into [0, π/2]. A hand straight above or below the anchor is π/2.
func WingAngle(anchorX, anchorY, handX, handY float64) float64 {
	return math.Atan2(math.Abs(handY-anchorY), math.Abs(handX-anchorX))
}

// FlapSpeed is the downward hand speed between two samples, zero when the
// hand moved up or held still.
func FlapSpeed(prevY, curY, delta float64) float64 {
	if delta <= 0 || curY >= prevY {
		return 0
	}
	return (prevY - curY) / delta
}

// Integrate advances altitude and vertical speed by one frame.
// accel is the already scaled gravity, impulse the flap speed change for the
// frame. Altitude is floored at 0 and ground contact zeroes vertical speed.
func Integrate(altitude, vertSpeed, accel, impulse, delta float64) (float64, float64) {
	vertSpeed += accel*delta + impulse
	altitude += vertSpeed * delta
	if altitude <= 0 {
		return 0, 0
	}
	return altitude, vertSpeed
}

// WithinRadius reports whether altitude is strictly inside a ring of the
// given diameter centered at ringY.
func WithinRadius(altitude, ringY, scale float64) bool {
	return math.Abs(altitude-ringY) < scale/2
}
