package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/camera"
	"voxel-raytracer/internal/geometry"
	"voxel-raytracer/internal/material"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/skybox"
)

// Light is a point light. The frame loop may reassign it between frames;
// a render pass only ever sees a snapshot slice.
type Light struct {
	Position  mgl64.Vec3
	Color     raster.Color
	Intensity float64
}

// Scene is the ordered list of cubes. Read-only while rendering.
type Scene struct {
	Objects []geometry.Cube
}

// Nearest returns the closest intersection along the ray, or geometry.Empty().
func (s *Scene) Nearest(origin, direction mgl64.Vec3) geometry.Intersect {
	nearest := geometry.Empty()
	for i := range s.Objects {
		hit := s.Objects[i].Intersect(origin, direction)
		if hit.IsIntersecting && hit.Distance < nearest.Distance {
			nearest = hit
		}
	}
	return nearest
}

// World bundles everything needed to render frames of one scene.
type World struct {
	Scene     *Scene
	Lights    []Light
	Camera    camera.Camera
	Sky       skybox.Sampler
	Presets   []Preset
	Materials map[string]material.Material
}

// CopyLights returns a snapshot of the lights that later mutation cannot reach.
func (w *World) CopyLights() []Light {
	out := make([]Light, len(w.Lights))
	copy(out, w.Lights)
	return out
}

// Preset returns the named preset from the world or the built-ins.
func (w *World) Preset(name string) (Preset, bool) {
	for _, p := range w.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return BuiltinPreset(name)
}

// AllPresets lists world presets followed by built-ins not overridden by name.
func (w *World) AllPresets() []Preset {
	out := append([]Preset(nil), w.Presets...)
	for _, b := range Builtins() {
		if _, ok := w.presetByName(b.Name); !ok {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) presetByName(name string) (Preset, bool) {
	for _, p := range w.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
