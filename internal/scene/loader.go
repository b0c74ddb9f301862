package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/camera"
	"voxel-raytracer/internal/geometry"
	"voxel-raytracer/internal/log"
	"voxel-raytracer/internal/material"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/skybox"
	"voxel-raytracer/internal/texture"
)

var logger = log.New("scene")

type fileScene struct {
	Materials map[string]fileMaterial `json:"materials"`
	Blocks    []fileBlock             `json:"blocks"`
	Lights    []fileLight             `json:"lights"`
	Camera    *fileCamera             `json:"camera"`
	Sky       *fileSky                `json:"sky"`
	Presets   []filePreset            `json:"presets"`
}

type fileMaterial struct {
	Diffuse         [3]float64 `json:"diffuse"`
	Specular        float64    `json:"specular"`
	Albedo          [4]float64 `json:"albedo"`
	RefractiveIndex float64    `json:"refractive_index"`
	Texture         string     `json:"texture"`
	Emission        [3]float64 `json:"emission"`
}

type fileBlock struct {
	Material string      `json:"material"`
	At       *[3]float64 `json:"at"`
	Min      *[3]float64 `json:"min"`
	Max      *[3]float64 `json:"max"`
}

type fileLight struct {
	Position  [3]float64 `json:"position"`
	Color     [3]float64 `json:"color"`
	Intensity float64    `json:"intensity"`
}

type fileCamera struct {
	Position [3]float64  `json:"position"`
	Target   [3]float64  `json:"target"`
	Up       *[3]float64 `json:"up"`
}

type fileSky struct {
	Color *[3]float64       `json:"color"`
	Faces map[string]string `json:"faces"`
}

type filePreset struct {
	Name           string      `json:"name"`
	LightPosition  [3]float64  `json:"light_position"`
	LightColor     [3]float64  `json:"light_color"`
	LightIntensity float64     `json:"light_intensity"`
	SkyTint        *[3]float64 `json:"sky_tint"`
}

// Load reads a JSON scene file. textures resolves material texture names
// and skyTextures resolves cubemap faces; either may be nil.
func Load(path string, textures, skyTextures texture.Resolver) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	w, err := Parse(data, textures, skyTextures)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return w, nil
}

// Parse decodes a scene description.
func Parse(data []byte, textures, skyTextures texture.Resolver) (*World, error) {
	var fs fileScene
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	materials, err := buildMaterials(fs.Materials, textures)
	if err != nil {
		return nil, err
	}

	sc := &Scene{Objects: make([]geometry.Cube, 0, len(fs.Blocks))}
	for i, b := range fs.Blocks {
		m, ok := materials[b.Material]
		if !ok {
			return nil, fmt.Errorf("block %d: unknown material %q", i, b.Material)
		}
		cube, err := b.cube(m)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		sc.Objects = append(sc.Objects, cube)
	}

	w := &World{Scene: sc, Materials: materials}

	for _, l := range fs.Lights {
		w.Lights = append(w.Lights, Light{
			Position:  vec(l.Position),
			Color:     rgb(l.Color),
			Intensity: l.Intensity,
		})
	}

	w.Camera = defaultCamera()
	if fs.Camera != nil {
		up := mgl64.Vec3{0, 1, 0}
		if fs.Camera.Up != nil {
			up = vec(*fs.Camera.Up)
		}
		cam, err := camera.New(vec(fs.Camera.Position), vec(fs.Camera.Target), up)
		if err != nil {
			return nil, err
		}
		w.Camera = *cam
	}

	w.Sky = buildSky(fs.Sky, skyTextures)

	for _, p := range fs.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		tint := raster.White
		if p.SkyTint != nil {
			tint = rgb(*p.SkyTint)
		}
		w.Presets = append(w.Presets, Preset{
			Name:           p.Name,
			LightPosition:  vec(p.LightPosition),
			LightColor:     rgb(p.LightColor),
			LightIntensity: p.LightIntensity,
			SkyTint:        tint,
		})
	}

	logger.Debugf("parsed scene: %d materials, %d blocks, %d lights, %d presets",
		len(materials), len(sc.Objects), len(w.Lights), len(w.Presets))
	return w, nil
}

func buildMaterials(in map[string]fileMaterial, textures texture.Resolver) (map[string]material.Material, error) {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]material.Material, len(in))
	for _, name := range names {
		fm := in[name]
		ior := fm.RefractiveIndex
		if ior == 0 {
			ior = 1
		}

		var tex texture.Provider
		if fm.Texture != "" {
			if img := resolve(textures, fm.Texture); img != nil {
				tex = img
			} else {
				logger.Warningf("material %s: texture %q not found, using flat color", name, fm.Texture)
			}
		}

		m, err := material.New(rgb(fm.Diffuse), fm.Specular, material.Albedo(fm.Albedo), ior, tex, rgb(fm.Emission))
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", name, err)
		}
		out[name] = m
	}
	return out, nil
}

func (b fileBlock) cube(m material.Material) (geometry.Cube, error) {
	switch {
	case b.At != nil:
		return geometry.NewBlock(vec(*b.At), m), nil
	case b.Min != nil && b.Max != nil:
		return geometry.NewCube(vec(*b.Min), vec(*b.Max), m)
	default:
		return geometry.Cube{}, fmt.Errorf("needs either at or min and max")
	}
}

func buildSky(fs *fileSky, textures texture.Resolver) skybox.Sampler {
	uniform := skybox.Uniform{Color: dayColor}
	if fs == nil {
		return uniform
	}
	if fs.Color != nil {
		uniform.Color = rgb(*fs.Color)
	}
	if len(fs.Faces) == 0 {
		return uniform
	}

	var faces [6]texture.Provider
	for i, name := range skybox.FaceNames() {
		texName, ok := fs.Faces[name]
		if !ok {
			logger.Warningf("sky: %s face not listed, using uniform color", name)
			return uniform
		}
		img := resolve(textures, texName)
		if img == nil {
			logger.Warningf("sky: %s face texture %q not found, using uniform color", name, texName)
			return uniform
		}
		faces[i] = img
	}

	sky, err := skybox.New(faces)
	if err != nil {
		logger.Warningf("%v", err)
		return uniform
	}
	return sky
}

func resolve(r texture.Resolver, name string) *texture.Image {
	if r == nil {
		return nil
	}
	return r.Resolve(name)
}

// Default returns the built-in demo: one grey cobblestone cube at the origin
// lit from above and in front, seen from fifteen units down +Z.
func Default() *World {
	stone, err := material.New(raster.RGB8(90, 90, 90), 10, material.Albedo{0.3, 0.5, 0.3, 0}, 1, nil, raster.Black)
	if err != nil {
		panic(err)
	}
	cube := geometry.Cube{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}, Material: stone}

	return &World{
		Scene:     &Scene{Objects: []geometry.Cube{cube}},
		Lights:    []Light{{Position: mgl64.Vec3{0, 10, 5}, Color: dayColor, Intensity: 2}},
		Camera:    defaultCamera(),
		Sky:       skybox.Uniform{Color: dayColor},
		Materials: map[string]material.Material{"stone": stone},
	}
}

func defaultCamera() camera.Camera {
	return camera.Camera{Position: mgl64.Vec3{0, 0, 15}, Target: mgl64.Vec3{}, Up: mgl64.Vec3{0, 1, 0}}
}

func vec(a [3]float64) mgl64.Vec3 { return mgl64.Vec3{a[0], a[1], a[2]} }

// rgb converts 0-255 channel values to linear [0, 1] color.
func rgb(a [3]float64) raster.Color {
	return raster.Color{R: a[0] / 255, G: a[1] / 255, B: a[2] / 255}
}
