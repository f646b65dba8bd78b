package docsift

import (
	"io"
	"log/slog"

	"github.com/docsift/docsift/raster"
)

// pipelineOptions holds configuration for a pipeline run.
type pipelineOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Output
	outputDir   string
	imageFormat raster.ImageFormat
	writeCSV    bool

	// OCR preprocessing
	enhance bool

	// Progress and diagnostics
	onPage func(page, total int)
	logger *slog.Logger
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		pages:       nil, // nil means all pages
		outputDir:   "output",
		imageFormat: raster.FormatPNG,
		writeCSV:    false,
		enhance:     false,
		onPage:      nil,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// clone creates a deep copy of pipelineOptions.
func (o pipelineOptions) clone() pipelineOptions {
	newOpts := o

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
