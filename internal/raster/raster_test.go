package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"voxel-raytracer/internal/texture"
)

func TestColorClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"in range", Color{0.2, 0.5, 0.9}, Color{0.2, 0.5, 0.9}},
		{"above", Color{1.5, 2, 1}, Color{1, 1, 1}},
		{"below", Color{-0.5, 0, -1}, Color{0, 0, 0}},
		{"nan", Color{math.NaN(), 0.5, 0}, Color{0, 0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorArithmetic(t *testing.T) {
	a := Color{0.5, 0.25, 1}
	b := Color{0.5, 1, 0}

	if got := a.Add(b); got != (Color{1, 1.25, 1}) {
		t.Errorf("unexpected Add result %v", got)
	}
	if got := a.Mul(b); got != (Color{0.25, 0.25, 0}) {
		t.Errorf("unexpected Mul result %v", got)
	}
	if got := a.Scale(2); got != (Color{1, 0.5, 2}) {
		t.Errorf("unexpected Scale result %v", got)
	}
	if got := RGB8(255, 0, 51); got != (Color{1, 0, 0.2}) {
		t.Errorf("unexpected RGB8 result %v", got)
	}
}

func TestFrameBufferImage(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Clear(Color{0, 0, 1})
	fb.Set(1, 1, Color{2, 0, 0})
	fb.Set(5, 5, White) // ignored

	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected image bounds %v", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected clamped red, got %v", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("expected blue background, got %v", got)
	}
	if fb.At(-1, 0) != Black {
		t.Error("expected out-of-range read to be black")
	}
}

func TestSampleNearestClamps(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	tex := texture.NewImage(img)

	tests := []struct {
		u, v float64
		want Color
	}{
		{0, 0, Color{1, 0, 0}},
		{1, 0, Color{0, 1, 0}},
		{0, 1, Color{0, 0, 1}},
		{1, 1, Color{1, 1, 1}},
		{-3, 7, Color{0, 0, 1}},
		{9, -2, Color{0, 1, 0}},
	}
	for _, tt := range tests {
		if got := SampleNearest(tex, tt.u, tt.v); got != tt.want {
			t.Errorf("SampleNearest(%v, %v): expected %v, got %v", tt.u, tt.v, tt.want, got)
		}
	}
}
