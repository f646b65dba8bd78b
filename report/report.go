// Package report writes extraction results to an output directory.
//
// A [Writer] manages one directory and produces the full result set of a
// run: rasterized page images, annotated detection images, table data as
// JSON, Markdown and optionally CSV, and the structured document report.
// File names are fixed; only the directory and the page-image encoding
// are configurable.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/raster"
)

// Output file names within the report directory.
const (
	TablesJSONFile     = "extracted_tables.json"
	TablesMarkdownFile = "extracted_tables.md"
	TablesCSVFile      = "extracted_tables.csv"
	DocumentReportFile = "structured_document_with_pages.json"
)

// jsonIndent matches the four-space indentation of the wire format.
const jsonIndent = "    "

// Config holds report writer settings.
type Config struct {
	// Dir is the output directory. Created on first write if absent.
	// Defaults to "output".
	Dir string

	// ImageFormat selects the page image encoding. Defaults to PNG.
	// Annotated detection images are always PNG.
	ImageFormat raster.ImageFormat
}

// DefaultConfig returns the default report configuration.
func DefaultConfig() Config {
	return Config{
		Dir:         "output",
		ImageFormat: raster.FormatPNG,
	}
}

// Writer writes run results into a single output directory.
type Writer struct {
	config Config
}

// NewWriter creates a report writer. Zero config fields fall back to
// defaults.
func NewWriter(config Config) *Writer {
	def := DefaultConfig()
	if config.Dir == "" {
		config.Dir = def.Dir
	}
	if !config.ImageFormat.Valid() {
		config.ImageFormat = def.ImageFormat
	}
	return &Writer{config: config}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.config.Dir
}

// EnsureDir creates the output directory if it does not exist.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.config.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", w.config.Dir, err)
	}
	return nil
}

// PageImagePath returns the path a page image is written to.
func (w *Writer) PageImagePath(page int) string {
	name := fmt.Sprintf("page_%d%s", page, w.config.ImageFormat.Ext())
	return filepath.Join(w.config.Dir, name)
}

// DetectedImagePath returns the path an annotated detection image is
// written to.
func (w *Writer) DetectedImagePath(page int) string {
	return filepath.Join(w.config.Dir, fmt.Sprintf("page_%d_detected.png", page))
}

// WritePageImage saves a rasterized page in the configured image format
// and returns the written path.
func (w *Writer) WritePageImage(pageImage raster.PageImage) (string, error) {
	if err := w.EnsureDir(); err != nil {
		return "", err
	}
	path := w.PageImagePath(pageImage.Number)
	if err := raster.SaveImage(path, pageImage.Image, w.config.ImageFormat); err != nil {
		return "", fmt.Errorf("saving page %d image: %w", pageImage.Number, err)
	}
	return path, nil
}

// WriteDetectedImage saves the annotated visualization for a page where
// table regions were detected and returns the written path.
func (w *Writer) WriteDetectedImage(pageImage raster.PageImage) (string, error) {
	if err := w.EnsureDir(); err != nil {
		return "", err
	}
	path := w.DetectedImagePath(pageImage.Number)
	if err := raster.SaveImage(path, pageImage.Image, raster.FormatPNG); err != nil {
		return "", fmt.Errorf("saving page %d detection image: %w", pageImage.Number, err)
	}
	return path, nil
}

// WriteTablesJSON writes all extracted tables as a JSON array ordered by
// extraction and returns the written path.
func (w *Writer) WriteTablesJSON(results []model.TableResult) (string, error) {
	data, err := json.MarshalIndent(results, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("encoding tables: %w", err)
	}
	return w.writeFile(TablesJSONFile, data)
}

// WriteTablesMarkdown writes all extracted tables as a Markdown document,
// one section per table, and returns the written path.
func (w *Writer) WriteTablesMarkdown(results []model.TableResult) (string, error) {
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "## Page: %d, Table: %d\n\n", r.Page, r.TableNumber)
		sb.WriteString(r.Table.ToMarkdown())
		sb.WriteString("\n---\n\n")
	}
	return w.writeFile(TablesMarkdownFile, []byte(sb.String()))
}

// WriteTablesCSV writes all extracted tables into a single CSV file,
// tables separated by a blank line, and returns the written path.
func (w *Writer) WriteTablesCSV(results []model.TableResult) (string, error) {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.Table.ToCSV())
	}
	return w.writeFile(TablesCSVFile, []byte(sb.String()))
}

// WriteDocumentReport writes the structured analysis of a document and
// its pages and returns the written path.
func (w *Writer) WriteDocumentReport(rep *model.DocumentReport) (string, error) {
	data, err := json.MarshalIndent(rep, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("encoding document report: %w", err)
	}
	return w.writeFile(DocumentReportFile, data)
}

func (w *Writer) writeFile(name string, data []byte) (string, error) {
	if err := w.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(w.config.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
