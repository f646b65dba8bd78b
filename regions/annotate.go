package regions

import (
	"image"

	"github.com/fogleman/gg"
)

// Annotate returns a copy of img with each region outlined in green. The
// input image is not modified.
func Annotate(img image.Image, regs []image.Rectangle) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetRGB(0, 1, 0)
	dc.SetLineWidth(3)
	for _, r := range regs {
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		dc.Stroke()
	}
	return dc.Image()
}
