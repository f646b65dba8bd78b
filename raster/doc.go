// Package raster converts PDF pages into bitmap images.
//
// Rasterization is performed by types implementing the [Rasterizer]
// interface. The package provides [MuPDF], backed by the MuPDF engine via
// go-fitz, which renders every page of a document at a configurable
// resolution:
//
//	r := raster.NewMuPDF(raster.DefaultConfig())
//	pages, err := r.Rasterize("invoice.pdf")
//
// Each [PageImage] carries the 1-based page number, the rendered image and
// the resolution it was rendered at. The default of 300 DPI balances OCR
// accuracy against memory use.
//
// The package also provides image encoding ([SaveImage], PNG or TIFF) and an
// optional pre-OCR enhancement chain ([Enhance]) for low-quality scans.
package raster
