package skybox

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/texture"
)

// faceColors gives every face a distinct solid color.
var faceColors = [6]color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
}

func solidTexture(c color.NRGBA) texture.Provider {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return texture.NewImage(img)
}

func testSkybox(t *testing.T) *Skybox {
	t.Helper()
	var faces [6]texture.Provider
	for i, c := range faceColors {
		faces[i] = solidTexture(c)
	}
	sky, err := New(faces)
	if err != nil {
		t.Fatal(err)
	}
	return sky
}

func TestProjectSelectsFace(t *testing.T) {
	tests := []struct {
		dir  mgl64.Vec3
		want Face
	}{
		{mgl64.Vec3{1, 0, 0}, Right},
		{mgl64.Vec3{-1, 0.2, 0.3}, Left},
		{mgl64.Vec3{0.1, 1, -0.2}, Top},
		{mgl64.Vec3{0, -1, 0}, Bottom},
		{mgl64.Vec3{0.3, 0.3, 1}, Front},
		{mgl64.Vec3{0, 0, -1}, Back},
		// Ties resolve X before Y before Z.
		{mgl64.Vec3{1, 1, 1}, Right},
		{mgl64.Vec3{0, -1, -1}, Bottom},
	}
	for _, tt := range tests {
		face, u, v := Project(tt.dir)
		if face != tt.want {
			t.Errorf("Project(%v): expected %s, got %s", tt.dir, tt.want, face)
		}
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Errorf("Project(%v): uv (%v, %v) out of [0,1]", tt.dir, u, v)
		}
	}
}

func TestProjectCenterAndScale(t *testing.T) {
	_, u, v := Project(mgl64.Vec3{0, 0, 10})
	if u != 0.5 || v != 0.5 {
		t.Errorf("expected face center (0.5, 0.5), got (%v, %v)", u, v)
	}

	// Unnormalized input projects identically.
	f1, u1, v1 := Project(mgl64.Vec3{2, 1, 0.5})
	f2, u2, v2 := Project(mgl64.Vec3{4, 2, 1})
	if f1 != f2 || u1 != u2 || v1 != v2 {
		t.Errorf("expected scale invariance, got %v/%v/%v vs %v/%v/%v", f1, u1, v1, f2, u2, v2)
	}
}

func TestSampleReturnsFaceTexel(t *testing.T) {
	sky := testSkybox(t)
	dirs := [6]mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for i, d := range dirs {
		c := faceColors[i]
		want := raster.RGB8(c.R, c.G, c.B)
		if got := sky.Sample(d); got != want {
			t.Errorf("face %s: expected %v, got %v", Face(i), want, got)
		}
	}

	// Swapping the dominant axis changes the face deterministically.
	if sky.Sample(mgl64.Vec3{0.9, 0.1, 0.2}) == sky.Sample(mgl64.Vec3{0.1, 0.9, 0.2}) {
		t.Error("expected different faces for different dominant axes")
	}
}

// quadTexture is 2x2: red and green on the top row, blue and white below.
func quadTexture() texture.Provider {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return texture.NewImage(img)
}

// rowsTexture is one texel wide with top above bottom.
func rowsTexture(top, bottom color.NRGBA) texture.Provider {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, top)
	img.SetNRGBA(0, 1, bottom)
	return texture.NewImage(img)
}

func TestSampleRowsFollowUpAxis(t *testing.T) {
	var faces [6]texture.Provider
	for i := range faces {
		faces[i] = rowsTexture(color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	}
	sky, err := New(faces)
	if err != nil {
		t.Fatal(err)
	}

	red, blue := raster.Color{R: 1}, raster.Color{B: 1}
	tests := []struct {
		dir  mgl64.Vec3
		want raster.Color
	}{
		{mgl64.Vec3{0, 0.8, 1}, red},
		{mgl64.Vec3{0, -0.8, 1}, blue},
		{mgl64.Vec3{0, 0.8, -1}, red},
		{mgl64.Vec3{0, -0.8, -1}, blue},
		{mgl64.Vec3{1, 0.8, 0}, red},
		{mgl64.Vec3{-1, -0.8, 0}, blue},
	}
	for _, tt := range tests {
		if got := sky.Sample(tt.dir); got != tt.want {
			t.Errorf("Sample(%v): expected %v, got %v", tt.dir, tt.want, got)
		}
	}
}

func TestSampleQuadrants(t *testing.T) {
	var faces [6]texture.Provider
	for i := range faces {
		faces[i] = quadTexture()
	}
	sky, err := New(faces)
	if err != nil {
		t.Fatal(err)
	}

	red := raster.Color{R: 1}
	green := raster.Color{G: 1}
	blue := raster.Color{B: 1}
	tests := []struct {
		dir  mgl64.Vec3
		want raster.Color
	}{
		// Front face: +X is to the right.
		{mgl64.Vec3{-0.5, 0.8, 1}, red},
		{mgl64.Vec3{0.5, 0.8, 1}, green},
		{mgl64.Vec3{-0.5, -0.8, 1}, blue},
		{mgl64.Vec3{0.5, -0.8, 1}, raster.White},
		// Back face mirrors X.
		{mgl64.Vec3{0.5, 0.8, -1}, red},
		{mgl64.Vec3{-0.5, 0.8, -1}, green},
		// Right face: -Z is to the right.
		{mgl64.Vec3{1, 0.5, 0.5}, red},
		{mgl64.Vec3{1, 0.5, -0.5}, green},
	}
	for _, tt := range tests {
		if got := sky.Sample(tt.dir); got != tt.want {
			t.Errorf("Sample(%v): expected %v, got %v", tt.dir, tt.want, got)
		}
	}
}

func TestNewRejectsMissingFace(t *testing.T) {
	var faces [6]texture.Provider
	for i := range faces {
		faces[i] = solidTexture(faceColors[i])
	}
	faces[Top] = nil
	if _, err := New(faces); err == nil {
		t.Error("expected error for missing top face")
	}
}

func TestUniformAndTinted(t *testing.T) {
	sky := Uniform{Color: raster.Color{R: 0.5, G: 1, B: 1}}
	tinted := Tinted{Sky: sky, Tint: raster.Color{R: 1, G: 0.5, B: 0}}
	if got := tinted.Sample(mgl64.Vec3{0, 1, 0}); got != (raster.Color{R: 0.5, G: 0.5, B: 0}) {
		t.Errorf("unexpected tinted sample %v", got)
	}
}
