// Package session holds the per-frame view state shared by the interactive
// frontends: the camera rig, the light snapshot and the active preset.
package session

import (
	"voxel-raytracer/internal/camera"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/skybox"
)

// Action is one discrete input intent for a frame.
type Action int

const (
	DollyIn Action = iota
	DollyOut
	OrbitLeft
	OrbitRight
	OrbitUp
	OrbitDown
	PresetDay
	PresetSunset
	PresetNight
)

// Controls scales input actions.
type Controls struct {
	RotationSpeed float64 // radians per frame
	DollyStep     float64 // world units per frame
}

// State is everything the frame loop mutates between render passes.
type State struct {
	Camera camera.Camera
	Lights []scene.Light
	Sky    skybox.Sampler
	Preset string

	world *scene.World
}

// NewState starts from the world's camera, lights and sky.
func NewState(w *scene.World) *State {
	return &State{
		Camera: w.Camera,
		Lights: w.CopyLights(),
		Sky:    w.Sky,
		world:  w,
	}
}

// Apply folds one frame of actions into the state. It must finish before
// the next render pass reads the state.
func (s *State) Apply(actions []Action, c Controls) {
	for _, a := range actions {
		switch a {
		case DollyIn:
			s.Camera.Dolly(c.DollyStep)
		case DollyOut:
			s.Camera.Dolly(-c.DollyStep)
		case OrbitLeft:
			s.Camera.Orbit(c.RotationSpeed, 0)
		case OrbitRight:
			s.Camera.Orbit(-c.RotationSpeed, 0)
		case OrbitUp:
			s.Camera.Orbit(0, -c.RotationSpeed)
		case OrbitDown:
			s.Camera.Orbit(0, c.RotationSpeed)
		case PresetDay:
			s.UsePreset("day")
		case PresetSunset:
			s.UsePreset("sunset")
		case PresetNight:
			s.UsePreset("night")
		}
	}
}

// Snapshot returns a copy whose lights cannot be reached by later mutation.
func (s *State) Snapshot() State {
	snap := *s
	snap.Lights = append([]scene.Light(nil), s.Lights...)
	return snap
}

// Presets lists the presets the state can switch to.
func (s *State) Presets() []scene.Preset {
	return s.world.AllPresets()
}

// UsePreset switches lighting to the named preset. Unknown names are
// reported and leave the state unchanged.
func (s *State) UsePreset(name string) bool {
	p, ok := s.world.Preset(name)
	if !ok {
		return false
	}
	s.Lights = p.Apply(s.Lights)
	s.Sky = p.Sky(s.world.Sky)
	s.Preset = p.Name
	return true
}
