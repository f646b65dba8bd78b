package regions

import (
	"image"
	"image/color"
)

// mask is a binary image in its own 0-based coordinate space.
type mask struct {
	w, h int
	bits []uint8
}

func newMask(w, h int) *mask {
	return &mask{w: w, h: h, bits: make([]uint8, w*h)}
}

func (m *mask) at(x, y int) bool { return m.bits[y*m.w+x] != 0 }
func (m *mask) set(x, y int)     { m.bits[y*m.w+x] = 1 }

// binarize produces a mask of ink pixels. Luminance is inverted so that ink
// scores high, then each pixel is compared against the mean of its local
// window: pixels more than offset above the mean are kept. Windows are
// clamped at the image border.
func binarize(img image.Image, window, offset int) *mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	inv := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			inv[y*w+x] = 255 - c.Y
		}
	}

	// Summed-area table with a one-cell border of zeros.
	stride := w + 1
	integral := make([]uint64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(inv[y*w+x])
			integral[(y+1)*stride+(x+1)] = integral[y*stride+(x+1)] + rowSum
		}
	}

	radius := window / 2
	m := newMask(w, h)
	for y := 0; y < h; y++ {
		y0, y1 := y-radius, y+radius+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 > h {
			y1 = h
		}
		for x := 0; x < w; x++ {
			x0, x1 := x-radius, x+radius+1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > w {
				x1 = w
			}
			sum := integral[y1*stride+x1] - integral[y0*stride+x1] -
				integral[y1*stride+x0] + integral[y0*stride+x0]
			count := int64((y1 - y0) * (x1 - x0))
			mean := int64(sum) / count
			if int64(inv[y*w+x]) > mean+int64(offset) {
				m.set(x, y)
			}
		}
	}
	return m
}
