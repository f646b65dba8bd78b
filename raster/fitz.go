package raster

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// MuPDF renders PDF pages with the MuPDF engine via go-fitz.
type MuPDF struct {
	config Config
}

// NewMuPDF creates a MuPDF rasterizer with the given configuration.
func NewMuPDF(config Config) *MuPDF {
	if config.DPI <= 0 {
		config.DPI = DefaultConfig().DPI
	}
	return &MuPDF{config: config}
}

// Rasterize renders every page of the document at the configured resolution.
func (m *MuPDF) Rasterize(pdfPath string) ([]PageImage, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	pages := make([]PageImage, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, m.config.DPI)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", i+1, err)
		}
		pages = append(pages, PageImage{
			Number: i + 1,
			Image:  img,
			DPI:    m.config.DPI,
		})
	}
	return pages, nil
}
