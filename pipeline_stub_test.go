//go:build !ocr

package docsift

import (
	"errors"
	"testing"

	"github.com/docsift/docsift/ocr"
	"github.com/docsift/docsift/raster"
)

// Without the ocr build tag and without an injected engine, the analysis
// pipeline reports that recognition is unavailable.
func TestAnalyzeDefaultEngineUnavailable(t *testing.T) {
	input := writeInputFile(t)

	rasterizer := &fakeRasterizer{pages: []raster.PageImage{makePage(1, 100, 200)}}

	_, _, err := Open(input).
		OutputDir(t.TempDir()).
		WithRasterizer(rasterizer).
		Analyze()
	if !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Fatalf("err = %v, want ErrOCRNotEnabled", err)
	}
}
