package raster

import "voxel-raytracer/internal/texture"

// SampleNearest returns the texel nearest to (u, v) in [0, 1]², with v = 0 at
// the top image row. Coordinates outside the texture are clamped, never an error.
func SampleNearest(tex texture.Provider, u, v float64) Color {
	w, h := tex.Width(), tex.Height()
	if w <= 0 || h <= 0 {
		return Black
	}

	x := clampIndex(int(u*float64(w-1)+0.5), w)
	y := clampIndex(int(v*float64(h-1)+0.5), h)

	r, g, b := tex.Texel(x, y)
	return RGB8(r, g, b)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
