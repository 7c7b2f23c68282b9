package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis; yaw rotates around it.
var Up = mgl64.Vec3{0, 1, 0}

// RotateY applies a local yaw of angle radians to q.
func RotateY(q mgl64.Quat, angle float64) mgl64.Quat {
	return q.Mul(mgl64.QuatRotate(angle, Up)).Normalize()
}

// Yaw returns the heading of q around the up axis in (-π, π].
func Yaw(q mgl64.Quat) float64 {
	fwd := q.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Atan2(fwd.X(), fwd.Z())
}

// LookAt orients an object at eye toward target. Coincident points keep the
// identity orientation.
func LookAt(eye, target mgl64.Vec3) mgl64.Quat {
	dir := target.Sub(eye)
	if dir.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	up := Up
	if math.Abs(dir.Normalize().Dot(up)) > 0.999 {
		up = mgl64.Vec3{0, 0, 1}
	}
	return mgl64.QuatLookAtV(eye, target, up)
}
