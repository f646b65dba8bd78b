// Package ocr recognizes text in rendered page images.
//
// Two engines are available. The Tesseract engine wraps the Tesseract
// library via gosseract and requires both the "ocr" build tag and a
// system Tesseract installation:
//
//	go build -tags ocr
//
// On macOS, install Tesseract and the Hebrew language pack via:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-heb
//
// The Azure engine calls the Azure Computer Vision OCR API and needs no
// build tag, only an endpoint and a subscription key.
package ocr

import "image"

// Engine recognizes text in a page image.
type Engine interface {
	// Recognize returns the text found in the image, with leading and
	// trailing whitespace trimmed.
	Recognize(img image.Image) (string, error)

	// Close releases engine resources.
	Close() error
}

// Config holds OCR engine settings.
type Config struct {
	// Languages is a "+" separated list of Tesseract language codes
	// (e.g. "heb+eng"). Defaults to "heb+eng".
	Languages string

	// TessdataPrefix overrides the directory Tesseract loads language
	// data from. Empty means the system default.
	TessdataPrefix string
}

// DefaultConfig returns the default OCR configuration, tuned for
// Hebrew documents with embedded Latin text.
func DefaultConfig() Config {
	return Config{
		Languages: "heb+eng",
	}
}
