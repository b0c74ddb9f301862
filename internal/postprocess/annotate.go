package postprocess

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const labelPadding = 4

// Annotate draws a caption in the bottom-left corner on a dark band.
// The input image is not modified.
func Annotate(img image.Image, text string) *image.NRGBA {
	dc := gg.NewContextForImage(img)
	w, h := dc.MeasureString(text)
	height := float64(dc.Height())

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, height-h-2*labelPadding, w+2*labelPadding, h+2*labelPadding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawString(text, labelPadding, height-labelPadding)

	out := image.NewNRGBA(dc.Image().Bounds())
	draw.Draw(out, out.Bounds(), dc.Image(), dc.Image().Bounds().Min, draw.Src)
	return out
}
