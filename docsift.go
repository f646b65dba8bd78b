// Package docsift extracts tabular and semantic data from PDF documents.
//
// Two pipelines are available. The table pipeline rasterizes pages,
// detects table-like regions by layout analysis, and extracts a
// structured table from the text layer under each region:
//
//	results, warnings, err := docsift.Open("invoice.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docsift.FormatWarnings(warnings))
//	}
//
// The analysis pipeline recognizes page text with OCR and distills
// semantic fields (document type, invoice number, date, totals, line
// items) from it:
//
//	report, warnings, err := docsift.Open("invoice.pdf").Analyze()
//
// Both pipelines write their results to an output directory, "output"
// by default. With options:
//
//	results, _, err := docsift.Open("invoice.pdf").
//	    Pages(1, 2).
//	    OutputDir("run1").
//	    WriteCSV().
//	    Tables()
//
// For advanced use cases the engine packages (raster, regions, tables,
// ocr, structure) are also usable directly.
package docsift

// Open prepares a pipeline for the given PDF file and returns it for
// fluent configuration. The file is not touched until a terminal
// operation like Tables or Analyze runs.
//
// Example:
//
//	results, warnings, err := docsift.Open("document.pdf").Tables()
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := docsift.Must(extractor.ExtractTables(path, 1, region))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to a terminal operation like
// Tables() or Analyze() and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	results := docsift.MustResult(docsift.Open("document.pdf").Tables())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
