package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/tiff"
)

// ImageFormat selects the on-disk encoding for page images.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatTIFF ImageFormat = "tiff"
)

// Ext returns the file extension for the format, including the dot.
func (f ImageFormat) Ext() string {
	switch f {
	case FormatTIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// Valid reports whether f is a supported format.
func (f ImageFormat) Valid() bool {
	return f == FormatPNG || f == FormatTIFF
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	switch format {
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// SaveImage writes img to path in the given format.
func SaveImage(path string, img image.Image, format ImageFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
