package mathutil

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// zeroLen is the length below which a vector has no usable direction.
const zeroLen = 1e-12

// MustNormalize returns v scaled to unit length.
// A zero-length vector is a precondition violation and panics.
func MustNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < zeroLen || math.IsNaN(l) {
		panic(fmt.Sprintf("mathutil: cannot normalize degenerate vector %v", v))
	}
	return v.Mul(1 / l)
}

// IsDegenerate reports whether v has no usable direction.
func IsDegenerate(v mgl64.Vec3) bool {
	l := v.Len()
	return l < zeroLen || math.IsNaN(l)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Reflect mirrors incident about normal: i - 2(i·n)n.
func Reflect(incident, normal mgl64.Vec3) mgl64.Vec3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}
