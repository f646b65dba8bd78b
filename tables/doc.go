// Package tables provides structured table extraction from PDF pages.
//
// This package turns a table-like page region into rows and columns of
// text, even when the table lacks explicit gridlines.
//
// # Extractors
//
// Extraction is performed by types implementing the [Extractor] interface.
// The package provides:
//
//   - [StreamExtractor] - clusters the PDF text layer into rows and columns
//
// Extractors are registered globally and can be retrieved by name:
//
//	extractor := tables.GetExtractor("stream")
//	found, err := extractor.ExtractTables("invoice.pdf", 1, region)
//
// # Stream Extraction
//
// The [StreamExtractor] reads positioned text from the document's text layer
// and reconstructs the table geometry:
//
//  1. Positioned text runs are collected from the page
//  2. Runs outside the requested region are discarded
//  3. Rows are formed by grouping runs with matching vertical positions
//  4. Columns are formed by clustering the distinct horizontal positions
//  5. The grid is accepted only if it has at least two rows and two columns
//
// The region is given in image-pixel coordinates of the rasterized page
// (bottom-left origin); the extractor converts it to page points using the
// configured render resolution.
//
// # Configuration
//
// Extraction behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.RowTolerance = 3.0
//	extractor.Configure(config)
//
// Configuration options include:
//
//   - DPI - resolution of the page images regions were detected on
//   - MinRows, MinCols - minimum accepted table dimensions
//   - RowTolerance - vertical distance treated as the same row (points)
//   - ColumnTolerance - horizontal distance treated as the same column (points)
package tables
