package raster

import (
	"image"
)

// PageImage is a single rasterized PDF page.
type PageImage struct {
	// Number is the 1-based page number within the source document.
	Number int
	// Image is the rendered page bitmap.
	Image image.Image
	// DPI is the resolution the page was rendered at.
	DPI float64
}

// Rasterizer renders every page of a PDF document into a bitmap image.
// Implementations return pages in document order with 1-based numbering.
type Rasterizer interface {
	Rasterize(pdfPath string) ([]PageImage, error)
}

// Config controls page rendering.
type Config struct {
	// DPI is the render resolution. Higher values improve OCR and region
	// detection accuracy at the cost of memory.
	DPI float64
}

// DefaultConfig returns the default rasterization settings.
func DefaultConfig() Config {
	return Config{
		DPI: 300,
	}
}
