package camera

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/mathutil"
)

const (
	// PitchMargin keeps orbiting away from the poles, where yaw is undefined.
	PitchMargin = 0.1

	// MinDistance is the closest a dolly may bring the eye to the target.
	MinDistance = 0.1
)

// Camera is an eye orbiting a look-at target. Owned by the frame loop and
// only mutated between frames.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// New validates the rig: the look vector must be non-zero and not parallel to up.
func New(position, target, up mgl64.Vec3) (*Camera, error) {
	c := &Camera{Position: position, Target: target, Up: up}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that an orthonormal basis can be built.
func (c Camera) Validate() error {
	look := c.Target.Sub(c.Position)
	if mathutil.IsDegenerate(look) {
		return errors.New("camera: target coincides with position")
	}
	if mathutil.IsDegenerate(c.Up) {
		return errors.New("camera: up vector has zero length")
	}
	if mathutil.IsDegenerate(look.Cross(c.Up)) {
		return errors.New("camera: up vector is parallel to the look direction")
	}
	return nil
}

// Forward returns the unit vector from position to target.
func (c Camera) Forward() mgl64.Vec3 {
	return mathutil.MustNormalize(c.Target.Sub(c.Position))
}

// Basis returns the orthonormal right, up and forward vectors.
func (c Camera) Basis() (right, up, forward mgl64.Vec3) {
	forward = c.Forward()
	right = mathutil.MustNormalize(forward.Cross(c.Up))
	up = mathutil.MustNormalize(right.Cross(forward))
	return right, up, forward
}

// TransformVector maps a camera-space direction (x right, y up, -z forward)
// into a unit world-space direction.
func (c Camera) TransformVector(local mgl64.Vec3) mgl64.Vec3 {
	right, up, forward := c.Basis()
	world := right.Mul(local[0]).
		Add(up.Mul(local[1])).
		Sub(forward.Mul(local[2]))
	return mathutil.MustNormalize(world)
}

// Distance returns the orbit radius.
func (c Camera) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// Angles returns the current yaw and pitch of the eye around the target.
// Positive pitch puts the eye below the target.
func (c Camera) Angles() (yaw, pitch float64) {
	offset := c.Position.Sub(c.Target)
	yaw = math.Atan2(offset[2], offset[0])
	xz := math.Hypot(offset[0], offset[2])
	pitch = math.Atan2(-offset[1], xz)
	return yaw, pitch
}

// Orbit rotates the eye around the target at constant radius. Yaw wraps,
// pitch is clamped strictly inside (-π/2, π/2).
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	radius := c.Distance()
	yaw, pitch := c.Angles()

	yaw = mathutil.WrapAngle(yaw + deltaYaw)
	limit := math.Pi/2 - PitchMargin
	pitch = mathutil.Clamp(pitch+deltaPitch, -limit, limit)

	c.Position = c.Target.Add(mgl64.Vec3{
		radius * math.Cos(yaw) * math.Cos(pitch),
		-radius * math.Sin(pitch),
		radius * math.Sin(yaw) * math.Cos(pitch),
	})
}

// Dolly moves the eye along the forward vector; positive moves toward the
// target. The eye never gets closer than MinDistance to the target.
func (c *Camera) Dolly(distance float64) {
	if max := c.Distance() - MinDistance; distance > max {
		distance = max
	}
	c.Position = c.Position.Add(c.Forward().Mul(distance))
}
