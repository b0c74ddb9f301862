package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/mathutil"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/skybox"
)

// Preset is a time-of-day lighting setup applied between frames.
type Preset struct {
	Name           string
	LightPosition  mgl64.Vec3
	LightColor     raster.Color
	LightIntensity float64
	SkyTint        raster.Color
}

var (
	dayColor    = raster.RGB8(135, 206, 235)
	sunsetColor = raster.RGB8(251, 144, 98)
	nightColor  = raster.RGB8(19, 24, 98)
)

// Builtins returns the day, sunset and night presets.
func Builtins() []Preset {
	return []Preset{
		{Name: "day", LightPosition: mgl64.Vec3{0, 10, 5}, LightColor: dayColor, LightIntensity: 2, SkyTint: raster.White},
		{Name: "sunset", LightPosition: mgl64.Vec3{10, 2, 2}, LightColor: sunsetColor, LightIntensity: 2, SkyTint: sunsetColor},
		{Name: "night", LightPosition: mgl64.Vec3{-5, 5, 10}, LightColor: nightColor, LightIntensity: 2, SkyTint: nightColor},
	}
}

// BuiltinPreset looks up a built-in preset by name.
func BuiltinPreset(name string) (Preset, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply returns a new light slice with the first light replaced by the
// preset's sun. The input slice is left untouched.
func (p Preset) Apply(lights []Light) []Light {
	sun := Light{Position: p.LightPosition, Color: p.LightColor, Intensity: p.LightIntensity}
	if len(lights) == 0 {
		return []Light{sun}
	}
	out := make([]Light, len(lights))
	copy(out, lights)
	out[0] = sun
	return out
}

// Sky wraps sky with the preset's tint.
func (p Preset) Sky(sky skybox.Sampler) skybox.Sampler {
	if p.SkyTint == raster.White {
		return sky
	}
	return skybox.Tinted{Sky: sky, Tint: p.SkyTint}
}

// SunArc positions a sun along a daily arc. t in [0, 1) maps sunrise (0)
// through noon (0.25) and sunset (0.5) to night. Below the horizon the sun
// keeps a faint moonlight intensity.
func SunArc(radius, baseIntensity, t float64) Light {
	elevation := 2 * math.Pi * t
	pos := mathutil.RotY(mgl64.Vec3{radius * math.Cos(elevation), radius * math.Sin(elevation), 0}, math.Pi/6)

	height := math.Sin(elevation)
	if height <= 0 {
		return Light{Position: pos.Mul(-1), Color: nightColor, Intensity: baseIntensity * 0.25}
	}

	// Warm near the horizon, sky blue at noon.
	c := sunsetColor.Scale(1 - height).Add(dayColor.Scale(height))
	return Light{Position: pos, Color: c, Intensity: baseIntensity * math.Max(0.2, height)}
}
