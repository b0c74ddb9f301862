package raster

import "image"

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []Color // row-major, len = W*H
}

// NewFrameBuffer allocates a black framebuffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]Color, w*h),
	}
}

// Size returns the framebuffer dimensions.
func (fb *FrameBuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Set writes a pixel. Out-of-range coordinates are ignored.
func (fb *FrameBuffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = c
}

// At reads a pixel; out-of-range coordinates return black.
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return Black
	}
	return fb.Pix[y*fb.Width+x]
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Image converts the framebuffer to an opaque NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyTo(img.Pix)
	return img
}

// CopyTo writes RGBA bytes (len >= 4*W*H) into dst. Used for display blits.
func (fb *FrameBuffer) CopyTo(dst []byte) {
	for i, c := range fb.Pix {
		n := c.NRGBA()
		o := i * 4
		dst[o] = n.R
		dst[o+1] = n.G
		dst[o+2] = n.B
		dst[o+3] = 255
	}
}
