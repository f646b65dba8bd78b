package regions

import (
	"image"
	"sort"
)

// Detector finds table-like regions in a page image. Returned rectangles are
// relative to the top-left corner of the image.
type Detector interface {
	Detect(img image.Image) ([]image.Rectangle, error)
}

// Config controls layout detection.
type Config struct {
	// MinWidth and MinHeight reject small components such as characters,
	// logos and decorative rules. Values are in pixels of the page image.
	MinWidth  int
	MinHeight int

	// MaxWidthRatio and MaxHeightRatio reject components covering almost the
	// whole page, such as page borders.
	MaxWidthRatio  float64
	MaxHeightRatio float64

	// Window is the side length of the neighborhood used for adaptive
	// binarization. Offset is added to the local mean: a pixel must be
	// darker than its neighborhood by more than Offset to be kept.
	Window int
	Offset int

	// MinRectangularity is the fraction of a component's bounding-box
	// perimeter that must be covered by the component itself. Rectangular
	// outlines score near 1.0; irregular blobs score low.
	MinRectangularity float64
}

// DefaultConfig returns detection settings tuned for 300 DPI page images.
func DefaultConfig() Config {
	return Config{
		MinWidth:          300,
		MinHeight:         100,
		MaxWidthRatio:     0.95,
		MaxHeightRatio:    0.90,
		Window:            15,
		Offset:            2,
		MinRectangularity: 0.5,
	}
}

// LayoutDetector finds table regions by binarizing the page and selecting
// large rectangular components.
type LayoutDetector struct {
	config Config
}

// NewLayoutDetector creates a layout detector with the given configuration.
func NewLayoutDetector(config Config) *LayoutDetector {
	def := DefaultConfig()
	if config.MinWidth <= 0 {
		config.MinWidth = def.MinWidth
	}
	if config.MinHeight <= 0 {
		config.MinHeight = def.MinHeight
	}
	if config.MaxWidthRatio <= 0 {
		config.MaxWidthRatio = def.MaxWidthRatio
	}
	if config.MaxHeightRatio <= 0 {
		config.MaxHeightRatio = def.MaxHeightRatio
	}
	if config.Window <= 0 {
		config.Window = def.Window
	}
	if config.MinRectangularity <= 0 {
		config.MinRectangularity = def.MinRectangularity
	}
	return &LayoutDetector{config: config}
}

// Detect returns the table-like regions of img, ordered top to bottom.
func (d *LayoutDetector) Detect(img image.Image) ([]image.Rectangle, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, nil
	}

	m := binarize(img, d.config.Window, d.config.Offset)
	comps, labels := findComponents(m)

	maxWidth := int(float64(width) * d.config.MaxWidthRatio)
	maxHeight := int(float64(height) * d.config.MaxHeightRatio)

	var candidates []component
	for _, c := range comps {
		w, h := c.bbox.Dx(), c.bbox.Dy()
		if w <= d.config.MinWidth || h <= d.config.MinHeight {
			continue
		}
		if w >= maxWidth || h >= maxHeight {
			continue
		}
		if borderCoverage(labels, m.w, c) < d.config.MinRectangularity {
			continue
		}
		candidates = append(candidates, c)
	}

	// A candidate whose bounding box sits inside a larger component is an
	// inner structure (a cell grid inside a frame, a box inside a border)
	// and is suppressed.
	var rects []image.Rectangle
	for _, c := range candidates {
		if containedInLarger(c, comps) {
			continue
		}
		rects = append(rects, c.bbox)
	}

	sort.Slice(rects, func(i, j int) bool {
		if rects[i].Min.Y != rects[j].Min.Y {
			return rects[i].Min.Y < rects[j].Min.Y
		}
		return rects[i].Min.X < rects[j].Min.X
	})
	return rects, nil
}

func containedInLarger(c component, comps []component) bool {
	area := c.bbox.Dx() * c.bbox.Dy()
	for _, other := range comps {
		if other.id == c.id {
			continue
		}
		otherArea := other.bbox.Dx() * other.bbox.Dy()
		if otherArea > area && c.bbox.In(other.bbox) {
			return true
		}
	}
	return false
}
