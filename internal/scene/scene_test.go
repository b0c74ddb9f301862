package scene

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/skybox"
	"voxel-raytracer/internal/texture"
)

type mapResolver map[string]*texture.Image

func (m mapResolver) Resolve(name string) *texture.Image { return m[name] }

func solid(c color.NRGBA) *texture.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return texture.NewImage(img)
}

const sceneJSON = `{
  "materials": {
    "stone": {"diffuse": [90,90,90], "specular": 10, "albedo": [0.3,0.5,0.3,0], "refractive_index": 1.0, "texture": "cobble"},
    "glass": {"diffuse": [200,220,255], "specular": 125, "albedo": [0.1,0.5,0.1,0.8], "refractive_index": 1.5},
    "lamp":  {"diffuse": [0,0,0], "albedo": [0,0,0,0], "emission": [255,200,100]}
  },
  "blocks": [
    {"material": "stone", "at": [0,0,0]},
    {"material": "glass", "min": [-1,-1,-1], "max": [1,1,1]},
    {"material": "lamp", "at": [3,0,0]}
  ],
  "lights": [{"position": [0,10,5], "color": [255,255,255], "intensity": 2}],
  "camera": {"position": [0,0,10], "target": [0,0,0]},
  "sky": {"color": [10,20,30]},
  "presets": [{"name": "dusk", "light_position": [5,1,0], "light_color": [200,100,50], "light_intensity": 1.5}]
}`

func TestParse(t *testing.T) {
	res := mapResolver{"cobble": solid(color.NRGBA{1, 2, 3, 255})}
	w, err := Parse([]byte(sceneJSON), res, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(w.Scene.Objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(w.Scene.Objects))
	}
	if got := w.Scene.Objects[0].Max; got != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("expected unit voxel max (1,1,1), got %v", got)
	}
	if !w.Scene.Objects[0].Material.HasTexture() {
		t.Error("expected stone to carry its texture")
	}
	if got := w.Scene.Objects[1].Material.RefractiveIndex; got != 1.5 {
		t.Errorf("expected glass ior 1.5, got %v", got)
	}
	if got := w.Scene.Objects[2].Material.Emission; got != raster.RGB8(255, 200, 100) {
		t.Errorf("expected lamp emission, got %v", got)
	}
	if len(w.Lights) != 1 || w.Lights[0].Color != raster.White || w.Lights[0].Intensity != 2 {
		t.Errorf("unexpected lights %+v", w.Lights)
	}
	if w.Camera.Position != (mgl64.Vec3{0, 0, 10}) || w.Camera.Up != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("unexpected camera %+v", w.Camera)
	}
	if got := w.Sky.Sample(mgl64.Vec3{0, 0, 1}); got != raster.RGB8(10, 20, 30) {
		t.Errorf("expected uniform sky, got %v", got)
	}
	p, ok := w.Preset("dusk")
	if !ok || p.SkyTint != raster.White || p.LightIntensity != 1.5 {
		t.Errorf("unexpected dusk preset %+v (found %v)", p, ok)
	}
	if _, ok := w.Preset("night"); !ok {
		t.Error("expected built-in night preset to be reachable")
	}
	if got := len(w.AllPresets()); got != 4 {
		t.Errorf("expected 4 presets, got %d", got)
	}
}

func TestParseMissingTextureFallsBack(t *testing.T) {
	w, err := Parse([]byte(sceneJSON), mapResolver{}, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w.Scene.Objects[0].Material.HasTexture() {
		t.Error("expected flat color when texture is missing")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"syntax", `{`, "parse"},
		{"unknown material", `{"blocks": [{"material": "nope", "at": [0,0,0]}]}`, "unknown material"},
		{"no placement", `{"materials": {"a": {}}, "blocks": [{"material": "a"}]}`, "needs either"},
		{"degenerate box", `{"materials": {"a": {}}, "blocks": [{"material": "a", "min": [0,0,0], "max": [1,0,1]}]}`, "degenerate"},
		{"bad albedo", `{"materials": {"a": {"albedo": [0,0,0.7,0.7]}}}`, "material a"},
		{"bad camera", `{"camera": {"position": [0,0,0], "target": [0,0,0]}}`, "camera"},
		{"unnamed preset", `{"presets": [{}]}`, "preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json), nil, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSkyFaces(t *testing.T) {
	res := mapResolver{}
	faces := map[string]string{}
	for i, name := range skybox.FaceNames() {
		res[name+"_tex"] = solid(color.NRGBA{uint8(i * 40), 0, 0, 255})
		faces[name] = name + "_tex"
	}
	fs := &fileSky{Faces: faces}

	sky := buildSky(fs, res)
	if _, ok := sky.(*skybox.Skybox); !ok {
		t.Fatalf("expected cubemap sky, got %T", sky)
	}
	if got := sky.Sample(mgl64.Vec3{0, 1, 0}); got != raster.RGB8(80, 0, 0) {
		t.Errorf("expected top face color, got %v", got)
	}

	delete(res, "back_tex")
	if _, ok := buildSky(fs, res).(skybox.Uniform); !ok {
		t.Error("expected uniform fallback when a face is missing")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, nil, nil); err != nil {
		t.Errorf("Load: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), nil, nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	w := Default()
	if len(w.Scene.Objects) != 1 {
		t.Fatalf("expected one cube, got %d", len(w.Scene.Objects))
	}
	if err := w.Camera.Validate(); err != nil {
		t.Errorf("default camera invalid: %v", err)
	}
	stone := w.Scene.Objects[0].Material
	if err := stone.Validate(); err != nil {
		t.Errorf("default material invalid: %v", err)
	}
	if stone.Shininess != 10 || stone.RefractiveIndex != 1 || stone.Emission != raster.Black {
		t.Errorf("unexpected default material %+v", stone)
	}
	if w.Lights[0].Position != (mgl64.Vec3{0, 10, 5}) {
		t.Errorf("unexpected light position %v", w.Lights[0].Position)
	}
}

func TestNearest(t *testing.T) {
	w, err := Parse([]byte(sceneJSON), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	hit := w.Scene.Nearest(mgl64.Vec3{0.5, 0.5, 10}, mgl64.Vec3{0, 0, -1})
	if !hit.IsIntersecting {
		t.Fatal("expected a hit")
	}
	// The unit voxel front face at z=1 ties the glass box front face; both are 9 away.
	if math.Abs(hit.Distance-9) > 1e-9 {
		t.Errorf("expected distance 9, got %v", hit.Distance)
	}
	if miss := w.Scene.Nearest(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 1, 0}); miss.IsIntersecting {
		t.Error("expected miss")
	}
}

func TestPresetApply(t *testing.T) {
	lights := []Light{{Position: mgl64.Vec3{1, 2, 3}, Intensity: 1}, {Position: mgl64.Vec3{4, 5, 6}}}
	night, _ := BuiltinPreset("night")

	got := night.Apply(lights)
	if lights[0].Position != (mgl64.Vec3{1, 2, 3}) {
		t.Error("Apply must not mutate its input")
	}
	if got[0].Position != (mgl64.Vec3{-5, 5, 10}) || got[0].Intensity != 2 {
		t.Errorf("unexpected sun %+v", got[0])
	}
	if got[1] != lights[1] {
		t.Error("expected secondary lights kept")
	}
	if n := len(night.Apply(nil)); n != 1 {
		t.Errorf("expected a single light from empty input, got %d", n)
	}

	day, _ := BuiltinPreset("day")
	sky := skybox.Uniform{Color: raster.White}
	if _, ok := day.Sky(sky).(skybox.Uniform); !ok {
		t.Error("expected white tint to leave sky unchanged")
	}
	if got := night.Sky(sky).Sample(mgl64.Vec3{0, 1, 0}); got != raster.RGB8(19, 24, 98) {
		t.Errorf("expected night tint, got %v", got)
	}
}

func TestSunArc(t *testing.T) {
	noon := SunArc(10, 2, 0.25)
	if noon.Position.Y() < 9.99 {
		t.Errorf("expected noon sun overhead, got %v", noon.Position)
	}
	if noon.Intensity != 2 {
		t.Errorf("expected full intensity at noon, got %v", noon.Intensity)
	}

	dawn := SunArc(10, 2, 0.02)
	if dawn.Intensity >= noon.Intensity {
		t.Errorf("expected dimmer dawn, got %v", dawn.Intensity)
	}
	if dawn.Color.R <= dawn.Color.B {
		t.Errorf("expected warm dawn color, got %v", dawn.Color)
	}

	night := SunArc(10, 2, 0.75)
	if night.Position.Y() <= 0 {
		t.Errorf("expected moon above the horizon, got %v", night.Position)
	}
	if night.Intensity != 0.5 {
		t.Errorf("expected moonlight intensity 0.5, got %v", night.Intensity)
	}
}
