//go:build ocr

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract wraps the Tesseract OCR engine.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a Tesseract engine with the given configuration.
// The engine should be closed when no longer needed to release resources.
func NewTesseract(config Config) (*Tesseract, error) {
	client := gosseract.NewClient()

	if config.Languages != "" {
		if err := client.SetLanguage(strings.Split(config.Languages, "+")...); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting languages %q: %w", config.Languages, err)
		}
	}
	if config.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(config.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting tessdata prefix: %w", err)
		}
	}

	return &Tesseract{client: client}, nil
}

// Close releases OCR resources.
func (t *Tesseract) Close() error {
	if t == nil || t.client == nil {
		return nil
	}
	return t.client.Close()
}

// Recognize performs OCR on a page image.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}
	return t.RecognizeImage(buf.Bytes())
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (t *Tesseract) RecognizeImage(imageData []byte) (string, error) {
	if err := t.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g. "heb+eng").
func (t *Tesseract) SetLanguage(lang string) error {
	return t.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (t *Tesseract) SetPageSegMode(mode gosseract.PageSegMode) error {
	return t.client.SetPageSegMode(mode)
}
