package tables

import (
	"github.com/docsift/docsift/model"
)

// Extractor is the interface for table extraction engines
type Extractor interface {
	// ExtractTables extracts the tables found within a region of a page.
	// The page number is 1-based. An empty result with a nil error means
	// the region held no structured table.
	ExtractTables(pdfPath string, page int, region model.Region) ([]*model.Table, error)

	// Name returns the extractor name
	Name() string

	// Configure sets extractor parameters
	Configure(config Config) error
}

// Config holds extractor configuration
type Config struct {
	// DPI is the resolution of the page images that regions were detected
	// on, used to convert region pixels into page points
	DPI float64

	// Minimum rows for a valid table
	MinRows int

	// Minimum columns for a valid table
	MinCols int

	// Vertical distance within which text runs belong to the same row (points)
	RowTolerance float64

	// Horizontal distance within which text positions form one column (points)
	ColumnTolerance float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		DPI:             300,
		MinRows:         2,
		MinCols:         2,
		RowTolerance:    2.0,
		ColumnTolerance: 10.0,
	}
}

// ExtractorRegistry holds registered extractors
type ExtractorRegistry struct {
	extractors map[string]Extractor
}

// NewRegistry creates a new extractor registry
func NewRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{
		extractors: make(map[string]Extractor),
	}
}

// Register registers an extractor
func (r *ExtractorRegistry) Register(extractor Extractor) {
	r.extractors[extractor.Name()] = extractor
}

// Get retrieves an extractor by name
func (r *ExtractorRegistry) Get(name string) Extractor {
	return r.extractors[name]
}

// List returns all registered extractor names
func (r *ExtractorRegistry) List() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterExtractor registers an extractor globally
func RegisterExtractor(extractor Extractor) {
	globalRegistry.Register(extractor)
}

// GetExtractor retrieves an extractor by name
func GetExtractor(name string) Extractor {
	return globalRegistry.Get(name)
}

// ListExtractors returns all registered extractor names
func ListExtractors() []string {
	return globalRegistry.List()
}

func init() {
	// Register default extractors
	RegisterExtractor(NewStreamExtractor())
}
