package skybox

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/mathutil"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/texture"
)

// Sampler maps an escaping ray direction to a background color.
type Sampler interface {
	Sample(direction mgl64.Vec3) raster.Color
}

// Face identifies one side of the cubemap.
type Face int

const (
	Right  Face = iota // +X
	Left               // -X
	Top                // +Y
	Bottom             // -Y
	Front              // +Z
	Back               // -Z
)

var faceNames = [...]string{"right", "left", "top", "bottom", "front", "back"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// FaceNames lists face names in Face order.
func FaceNames() []string {
	return faceNames[:]
}

// Skybox is a six-face cubemap. Read-only after construction.
type Skybox struct {
	faces [6]texture.Provider
}

// New builds a skybox from textures in Face order.
func New(faces [6]texture.Provider) (*Skybox, error) {
	for i, f := range faces {
		if f == nil || f.Width() <= 0 || f.Height() <= 0 {
			return nil, fmt.Errorf("skybox: %s face has no texels", Face(i))
		}
	}
	return &Skybox{faces: faces}, nil
}

// Sample returns the nearest texel of the face the direction points at.
func (s *Skybox) Sample(direction mgl64.Vec3) raster.Color {
	face, u, v := Project(direction)
	// Image rows grow downward.
	return raster.SampleNearest(s.faces[face], u, 1-v)
}

// Project selects the face along the dominant axis of direction (ties go to
// X, then Y, then Z) and returns face-local coordinates in [0, 1]².
func Project(direction mgl64.Vec3) (face Face, u, v float64) {
	d := mathutil.MustNormalize(direction)
	ax, ay, az := math.Abs(d[0]), math.Abs(d[1]), math.Abs(d[2])

	var major, uc, vc float64
	switch {
	case ax >= ay && ax >= az:
		major = ax
		if d[0] > 0 {
			face, uc, vc = Right, -d[2], d[1]
		} else {
			face, uc, vc = Left, d[2], d[1]
		}
	case ay >= az:
		major = ay
		if d[1] > 0 {
			face, uc, vc = Top, d[0], -d[2]
		} else {
			face, uc, vc = Bottom, d[0], d[2]
		}
	default:
		major = az
		if d[2] > 0 {
			face, uc, vc = Front, d[0], d[1]
		} else {
			face, uc, vc = Back, -d[0], d[1]
		}
	}

	u = 0.5 * (uc/major + 1)
	v = 0.5 * (vc/major + 1)
	return face, u, v
}

// Uniform is a single-color sky.
type Uniform struct {
	Color raster.Color
}

func (s Uniform) Sample(mgl64.Vec3) raster.Color {
	return s.Color
}

// Tinted multiplies another sky by a color, e.g. for time-of-day presets.
type Tinted struct {
	Sky  Sampler
	Tint raster.Color
}

func (s Tinted) Sample(direction mgl64.Vec3) raster.Color {
	return s.Sky.Sample(direction).Mul(s.Tint)
}
