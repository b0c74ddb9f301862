package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/material"
)

// Ray is an immutable origin/direction pair. Direction is unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parametric distance t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersect is the result of one ray/object test.
type Intersect struct {
	IsIntersecting bool
	Distance       float64
	Point          mgl64.Vec3
	Normal         mgl64.Vec3 // outward, unit length
	Material       material.Material
}

// Empty returns the no-hit record: not intersecting, infinite distance.
func Empty() Intersect {
	return Intersect{
		Distance: math.Inf(1),
		Material: material.Black(),
	}
}
