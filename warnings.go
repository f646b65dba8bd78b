package docsift

import (
	"fmt"
	"strings"
)

// Stage identifies the pipeline stage a warning originated from.
type Stage string

const (
	StageRasterize Stage = "rasterize"
	StageDetect    Stage = "detect"
	StageExtract   Stage = "extract"
	StageOCR       Stage = "ocr"
	StageWrite     Stage = "write"
)

// Warning describes a non-fatal problem encountered while processing a
// page. The page's contribution to the run is skipped and processing
// continues with the next page.
type Warning struct {
	// Page is the 1-based page number, or 0 when the warning is not
	// page-scoped.
	Page int

	// Stage is the pipeline stage that failed.
	Stage Stage

	// Message describes what went wrong.
	Message string
}

// String renders the warning for operator display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d [%s]: %s", w.Page, w.Stage, w.Message)
	}
	return fmt.Sprintf("[%s]: %s", w.Stage, w.Message)
}

// FormatWarnings renders warnings one per line for operator display.
// Returns the empty string when there are no warnings.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
