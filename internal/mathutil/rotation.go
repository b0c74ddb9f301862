package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotY rotates v around the Y axis. Angle in radians.
func RotY(v mgl64.Vec3, a float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(a).Mul3x1(v)
}

// WrapAngle reduces a modulo 2π, keeping its sign.
func WrapAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
