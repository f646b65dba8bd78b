package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func newTestImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestImageFormatExt(t *testing.T) {
	tests := []struct {
		format ImageFormat
		want   string
	}{
		{FormatPNG, ".png"},
		{FormatTIFF, ".tiff"},
		{ImageFormat(""), ".png"},
	}

	for _, tt := range tests {
		if got := tt.format.Ext(); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestImageFormatValid(t *testing.T) {
	if !FormatPNG.Valid() || !FormatTIFF.Valid() {
		t.Error("png and tiff should be valid formats")
	}
	if ImageFormat("bmp").Valid() {
		t.Error("bmp should not be a valid format")
	}
}

func TestEncodePNG(t *testing.T) {
	img := newTestImage(40, 30)

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestEncodeTIFF(t *testing.T) {
	img := newTestImage(40, 30)

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatTIFF); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, newTestImage(4, 4), ImageFormat("gif")); err == nil {
		t.Error("Encode() with unsupported format should fail")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page_1.png")

	if err := SaveImage(path, newTestImage(20, 20), FormatPNG); err != nil {
		t.Fatalf("SaveImage() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved image failed: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved image failed: %v", err)
	}
	if decoded.Bounds().Dx() != 20 || decoded.Bounds().Dy() != 20 {
		t.Errorf("saved image bounds = %v, want 20x20", decoded.Bounds())
	}
}

func TestEnhancePreservesDimensions(t *testing.T) {
	img := newTestImage(64, 48)

	out := Enhance(img)
	if out == nil {
		t.Fatal("Enhance() returned nil")
	}
	if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 48 {
		t.Errorf("enhanced bounds = %v, want 64x48", out.Bounds())
	}
}
