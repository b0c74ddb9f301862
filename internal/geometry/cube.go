package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/material"
	"voxel-raytracer/internal/raster"
)

// Cube is an axis-aligned box between two corners.
type Cube struct {
	Min      mgl64.Vec3
	Max      mgl64.Vec3
	Material material.Material
}

// NewCube validates the corners: every max component must exceed its min.
func NewCube(min, max mgl64.Vec3, m material.Material) (Cube, error) {
	for i := 0; i < 3; i++ {
		if !(max[i] > min[i]) {
			return Cube{}, fmt.Errorf("geometry: degenerate cube min %v max %v", min, max)
		}
	}
	return Cube{Min: min, Max: max, Material: m}, nil
}

// NewBlock returns the unit voxel whose min corner is at.
func NewBlock(at mgl64.Vec3, m material.Material) Cube {
	return Cube{Min: at, Max: at.Add(mgl64.Vec3{1, 1, 1}), Material: m}
}

// Center returns the midpoint of the box.
func (c Cube) Center() mgl64.Vec3 {
	return c.Min.Add(c.Max).Mul(0.5)
}

// Intersect tests a ray against the box using the slab method. The nearest
// strictly positive boundary crossing is reported: the entry face for rays
// starting outside, the exit face for rays starting inside.
func (c Cube) Intersect(origin, direction mgl64.Vec3) Intersect {
	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearAxis, farAxis := -1, -1

	for i := 0; i < 3; i++ {
		if direction[i] == 0 {
			// Parallel to this slab: inside it or never hitting.
			if origin[i] < c.Min[i] || origin[i] > c.Max[i] {
				return Empty()
			}
			continue
		}

		inv := 1 / direction[i]
		t1 := (c.Min[i] - origin[i]) * inv
		t2 := (c.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tNear {
			tNear = t1
			nearAxis = i
		}
		if t2 < tFar {
			tFar = t2
			farAxis = i
		}
	}

	if tNear > tFar || tFar <= 0 {
		return Empty()
	}

	dist, axis, exiting := tNear, nearAxis, false
	if tNear <= 0 {
		dist, axis, exiting = tFar, farAxis, true
	}
	if axis < 0 {
		return Empty()
	}

	// Entering through the min face or leaving through the max face decides the sign.
	var normal mgl64.Vec3
	if (direction[axis] > 0) == exiting {
		normal[axis] = 1
	} else {
		normal[axis] = -1
	}

	point := origin.Add(direction.Mul(dist))

	return Intersect{
		IsIntersecting: true,
		Distance:       dist,
		Point:          point,
		Normal:         normal,
		Material:       c.resolveMaterial(point, axis, normal[axis] > 0),
	}
}

// resolveMaterial samples the texture, when present, at the hit point's face UV.
func (c Cube) resolveMaterial(point mgl64.Vec3, axis int, positive bool) material.Material {
	if !c.Material.HasTexture() {
		return c.Material
	}
	u, v := c.FaceUV(point, axis, positive)
	// Image rows grow downward.
	return c.Material.WithDiffuse(raster.SampleNearest(c.Material.Texture, u, 1-v))
}

// FaceUV maps a point on the face perpendicular to axis into [0, 1]².
// u runs left to right and v bottom to top as seen from outside the face;
// on the top and bottom faces v runs along Z.
func (c Cube) FaceUV(point mgl64.Vec3, axis int, positive bool) (u, v float64) {
	frac := func(i int) float64 {
		return (point[i] - c.Min[i]) / (c.Max[i] - c.Min[i])
	}

	switch axis {
	case 0:
		u, v = frac(2), frac(1)
		if positive {
			u = 1 - u
		}
	case 1:
		u, v = frac(0), frac(2)
		if positive {
			v = 1 - v
		}
	default:
		u, v = frac(0), frac(1)
		if !positive {
			u = 1 - u
		}
	}
	return u, v
}
