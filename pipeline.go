package docsift

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/docsift/docsift/format"
	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/ocr"
	"github.com/docsift/docsift/raster"
	"github.com/docsift/docsift/regions"
	"github.com/docsift/docsift/report"
	"github.com/docsift/docsift/structure"
	"github.com/docsift/docsift/tables"
)

// Pipeline provides a fluent interface for extracting tables and semantic
// document data from PDFs. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method chaining.
type Pipeline struct {
	// Source
	filename string

	// Engines (nil means the default engine is built at run time)
	rasterizer raster.Rasterizer
	detector   regions.Detector
	extractor  tables.Extractor
	recognizer ocr.Engine

	// Configuration
	options pipelineOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename:   p.filename,
		rasterizer: p.rasterizer,
		detector:   p.detector,
		extractor:  p.extractor,
		recognizer: p.recognizer,
		options:    p.options.clone(),
		err:        p.err,
		warnings:   append([]Warning(nil), p.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	results, _, err := docsift.Open("doc.pdf").Pages(1, 3, 5).Tables()
func (p *Pipeline) Pages(pages ...int) *Pipeline {
	newPipe := p.clone()
	newPipe.options.pages = append(newPipe.options.pages, pages...)
	return newPipe
}

// PageRange specifies a range of pages to process (1-indexed, inclusive).
//
// Example:
//
//	results, _, err := docsift.Open("doc.pdf").PageRange(2, 4).Tables()
func (p *Pipeline) PageRange(start, end int) *Pipeline {
	newPipe := p.clone()
	for i := start; i <= end; i++ {
		newPipe.options.pages = append(newPipe.options.pages, i)
	}
	return newPipe
}

// OutputDir sets the directory result files are written to.
// Defaults to "output"; created if absent.
//
// Example:
//
//	results, _, err := docsift.Open("doc.pdf").OutputDir("run1").Tables()
func (p *Pipeline) OutputDir(dir string) *Pipeline {
	newPipe := p.clone()
	newPipe.options.outputDir = dir
	return newPipe
}

// ImageFormat sets the encoding for saved page images (PNG or TIFF).
// Annotated detection images are always PNG.
//
// Example:
//
//	results, _, err := docsift.Open("doc.pdf").ImageFormat(raster.FormatTIFF).Tables()
func (p *Pipeline) ImageFormat(format raster.ImageFormat) *Pipeline {
	newPipe := p.clone()
	newPipe.options.imageFormat = format
	return newPipe
}

// WriteCSV additionally writes extracted tables as CSV.
//
// Example:
//
//	results, _, err := docsift.Open("doc.pdf").WriteCSV().Tables()
func (p *Pipeline) WriteCSV() *Pipeline {
	newPipe := p.clone()
	newPipe.options.writeCSV = true
	return newPipe
}

// EnhanceImages applies a grayscale/contrast/sharpen chain to page images
// before OCR. Off by default; recognition runs on the raw rendering.
//
// Example:
//
//	report, _, err := docsift.Open("scan.pdf").EnhanceImages().Analyze()
func (p *Pipeline) EnhanceImages() *Pipeline {
	newPipe := p.clone()
	newPipe.options.enhance = true
	return newPipe
}

// WithRasterizer replaces the default MuPDF page rasterizer.
func (p *Pipeline) WithRasterizer(r raster.Rasterizer) *Pipeline {
	newPipe := p.clone()
	newPipe.rasterizer = r
	return newPipe
}

// WithDetector replaces the default layout region detector.
func (p *Pipeline) WithDetector(d regions.Detector) *Pipeline {
	newPipe := p.clone()
	newPipe.detector = d
	return newPipe
}

// WithTableExtractor replaces the default stream table extractor.
// The extractor's DPI configuration must match the rasterizer's so that
// region pixel coordinates land on the right part of the page.
func (p *Pipeline) WithTableExtractor(x tables.Extractor) *Pipeline {
	newPipe := p.clone()
	newPipe.extractor = x
	return newPipe
}

// WithRecognizer replaces the default Tesseract OCR engine. The caller
// keeps ownership: an injected engine is not closed by the pipeline.
//
// Example:
//
//	engine := ocr.NewAzure(endpoint, key)
//	report, _, err := docsift.Open("scan.pdf").WithRecognizer(engine).Analyze()
func (p *Pipeline) WithRecognizer(engine ocr.Engine) *Pipeline {
	newPipe := p.clone()
	newPipe.recognizer = engine
	return newPipe
}

// WithLogger sets a logger for debug traces. By default the pipeline
// does not log; it reports through return values and warnings.
func (p *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	newPipe := p.clone()
	if logger != nil {
		newPipe.options.logger = logger
	}
	return newPipe
}

// OnPage registers a hook called before each processed page with the
// 1-based position within the run and the total page count.
func (p *Pipeline) OnPage(fn func(page, total int)) *Pipeline {
	newPipe := p.clone()
	newPipe.options.onPage = fn
	return newPipe
}

// ============================================================================
// Terminal Operations (execute the pipeline and return results)
// ============================================================================

// Tables runs the table pipeline: rasterize pages, detect table-like
// regions, extract a structured table from the text layer under each
// region, and write the results to the output directory as JSON and
// Markdown (and CSV when enabled).
//
// Returns the extracted tables in page order, any warnings encountered,
// and an error. Per-page engine failures become warnings and the page is
// skipped; ErrNoTables is returned when the whole document yields no
// tables, in which case no table files are written.
//
// Example:
//
//	results, warnings, err := docsift.Open("invoice.pdf").Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docsift.FormatWarnings(warnings))
//	}
func (p *Pipeline) Tables() ([]model.TableResult, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.checkInput(); err != nil {
		return nil, nil, err
	}

	rasterizer := p.rasterizer
	if rasterizer == nil {
		rasterizer = raster.NewMuPDF(raster.DefaultConfig())
	}
	detector := p.detector
	if detector == nil {
		detector = regions.NewLayoutDetector(regions.DefaultConfig())
	}
	extractor := p.extractor
	if extractor == nil {
		extractor = tables.GetExtractor("stream")
	}

	log := p.options.logger

	pages, err := rasterizer.Rasterize(p.filename)
	if err != nil {
		return nil, nil, fmt.Errorf("rasterizing %s: %w", p.filename, err)
	}
	log.Debug("rasterized document", "path", p.filename, "pages", len(pages))

	selected, err := p.selectPages(pages)
	if err != nil {
		return nil, nil, err
	}

	writer := report.NewWriter(report.Config{
		Dir:         p.options.outputDir,
		ImageFormat: p.options.imageFormat,
	})
	if err := writer.EnsureDir(); err != nil {
		return nil, nil, err
	}

	var results []model.TableResult
	tableNumber := 0

	for i, page := range selected {
		if p.options.onPage != nil {
			p.options.onPage(i+1, len(selected))
		}

		if _, err := writer.WritePageImage(page); err != nil {
			p.warn(page.Number, StageWrite, err)
		}

		found, err := detector.Detect(page.Image)
		if err != nil {
			p.warn(page.Number, StageDetect, err)
			continue
		}
		if len(found) == 0 {
			log.Debug("no table regions", "page", page.Number)
			continue
		}
		log.Debug("detected table regions", "page", page.Number, "count", len(found))

		annotated := regions.Annotate(page.Image, found)
		detectedPage := raster.PageImage{Number: page.Number, Image: annotated, DPI: page.DPI}
		if _, err := writer.WriteDetectedImage(detectedPage); err != nil {
			p.warn(page.Number, StageWrite, err)
		}

		imageHeight := page.Image.Bounds().Dy()
		for _, rect := range found {
			region := model.RegionFromImageRect(rect, imageHeight)

			pageTables, err := extractor.ExtractTables(p.filename, page.Number, region)
			if err != nil {
				p.warn(page.Number, StageExtract, err)
				continue
			}
			for _, table := range pageTables {
				tableNumber++
				results = append(results, model.TableResult{
					Page:        page.Number,
					TableNumber: tableNumber,
					Table:       table,
				})
			}
		}
	}

	if len(results) == 0 {
		return nil, p.warnings, ErrNoTables
	}

	if _, err := writer.WriteTablesJSON(results); err != nil {
		return results, p.warnings, err
	}
	if _, err := writer.WriteTablesMarkdown(results); err != nil {
		return results, p.warnings, err
	}
	if p.options.writeCSV {
		if _, err := writer.WriteTablesCSV(results); err != nil {
			return results, p.warnings, err
		}
	}

	return results, p.warnings, nil
}

// Analyze runs the OCR pipeline: rasterize pages, recognize each page's
// text, distill semantic fields from it per page and for the document as
// a whole, and write the structured report to the output directory.
//
// Returns the document report, any warnings encountered, and an error.
// Pages where recognition fails become warnings and are skipped;
// ErrNoText is returned when no page yields text, in which case the
// report file is not written.
//
// Example:
//
//	report, warnings, err := docsift.Open("invoice.pdf").Analyze()
//	fmt.Println(report.Document.DocumentType)
func (p *Pipeline) Analyze() (*model.DocumentReport, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.checkInput(); err != nil {
		return nil, nil, err
	}

	rasterizer := p.rasterizer
	if rasterizer == nil {
		rasterizer = raster.NewMuPDF(raster.DefaultConfig())
	}

	recognizer := p.recognizer
	if recognizer == nil {
		engine, err := ocr.NewTesseract(ocr.DefaultConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("creating OCR engine: %w", err)
		}
		defer engine.Close()
		recognizer = engine
	}

	log := p.options.logger

	pages, err := rasterizer.Rasterize(p.filename)
	if err != nil {
		return nil, nil, fmt.Errorf("rasterizing %s: %w", p.filename, err)
	}
	log.Debug("rasterized document", "path", p.filename, "pages", len(pages))

	selected, err := p.selectPages(pages)
	if err != nil {
		return nil, nil, err
	}

	writer := report.NewWriter(report.Config{
		Dir:         p.options.outputDir,
		ImageFormat: p.options.imageFormat,
	})
	if err := writer.EnsureDir(); err != nil {
		return nil, nil, err
	}

	var analyses []model.PageAnalysis
	var texts []string

	for i, page := range selected {
		if p.options.onPage != nil {
			p.options.onPage(i+1, len(selected))
		}

		if _, err := writer.WritePageImage(page); err != nil {
			p.warn(page.Number, StageWrite, err)
		}

		img := page.Image
		if p.options.enhance {
			img = raster.Enhance(img)
		}

		rawText, err := recognizer.Recognize(img)
		if err != nil {
			p.warn(page.Number, StageOCR, err)
			continue
		}
		log.Debug("recognized page", "page", page.Number, "chars", len(rawText))

		analyses = append(analyses, model.PageAnalysis{
			PageNumber: page.Number,
			Analysis:   structure.Structure(rawText),
			RawText:    rawText,
		})
		texts = append(texts, rawText)
	}

	fullText := strings.Join(texts, "\n\n")
	if strings.TrimSpace(fullText) == "" {
		return nil, p.warnings, ErrNoText
	}

	docReport := &model.DocumentReport{
		Document: structure.Structure(fullText),
		Pages:    analyses,
	}

	if _, err := writer.WriteDocumentReport(docReport); err != nil {
		return docReport, p.warnings, err
	}

	return docReport, p.warnings, nil
}

// ============================================================================
// Internal Helpers
// ============================================================================

// checkInput verifies the input file exists and holds a PDF before any
// engine touches it. Image inputs get a pointed error since scans often
// arrive as bare PNG or TIFF files.
func (p *Pipeline) checkInput() error {
	if _, err := os.Stat(p.filename); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	detected, err := format.DetectFile(p.filename)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	if detected != format.PDF {
		return fmt.Errorf("input %s is not a PDF (detected %s)", p.filename, detected)
	}
	return nil
}

// selectPages applies the page selection to the rasterized pages.
// Duplicates are dropped and the selection is processed in page order.
func (p *Pipeline) selectPages(pages []raster.PageImage) ([]raster.PageImage, error) {
	if len(p.options.pages) == 0 {
		return pages, nil
	}

	seen := make(map[int]bool)
	var nums []int
	for _, n := range p.options.pages {
		if n < 1 || n > len(pages) {
			return nil, fmt.Errorf("page %d out of range (1-%d)", n, len(pages))
		}
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)

	selected := make([]raster.PageImage, 0, len(nums))
	for _, n := range nums {
		selected = append(selected, pages[n-1])
	}
	return selected, nil
}

// warn records a non-fatal per-page failure.
func (p *Pipeline) warn(page int, stage Stage, err error) {
	p.warnings = append(p.warnings, Warning{
		Page:    page,
		Stage:   stage,
		Message: err.Error(),
	})
	p.options.logger.Warn("page stage failed", "page", page, "stage", string(stage), "err", err)
}
