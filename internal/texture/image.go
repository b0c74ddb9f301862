package texture

import "image"

// Provider exposes decoded texels. The tracer never decodes image formats itself.
type Provider interface {
	Width() int
	Height() int
	// Texel returns the RGB triple at (x, y), 0 <= x < Width, 0 <= y < Height.
	Texel(x, y int) (r, g, b uint8)
}

// Image adapts an NRGBA image to the Provider interface. Read-only after construction.
type Image struct {
	img *image.NRGBA
}

// NewImage wraps img. The image origin must be (0, 0).
func NewImage(img *image.NRGBA) *Image {
	return &Image{img: img}
}

func (t *Image) Width() int  { return t.img.Rect.Dx() }
func (t *Image) Height() int { return t.img.Rect.Dy() }

func (t *Image) Texel(x, y int) (r, g, b uint8) {
	i := t.img.PixOffset(x, y)
	p := t.img.Pix
	return p[i], p[i+1], p[i+2]
}

// NRGBA returns the underlying image.
func (t *Image) NRGBA() *image.NRGBA {
	return t.img
}
