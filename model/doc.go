// Package model provides the data structures shared by the docsift pipelines.
//
// All extraction operations ultimately produce these types, making them the
// primary API for consuming results.
//
// # Geometry
//
// Detected table regions live in two coordinate spaces. Detection happens on
// rasterized page images (origin top-left, y increasing downward), expressed
// with the standard library's image.Rectangle. Structured table extraction
// happens in page space (origin bottom-left, y increasing upward). The
// [Region] type holds page-space coordinates and [RegionFromImageRect]
// performs the conversion.
//
// # Tables
//
// The [Table] type represents an extracted table as rows and columns of
// [Cell] values, with Markdown and CSV renderers and a Records view used for
// JSON output.
//
// # Semantic records
//
// The [StructuredRecord] type is the result of semantic field extraction on
// OCR text: a document classification, invoice number, date, monetary summary
// and detected line items. Absent fields are explicit (nil pointers marshal
// to JSON null; line items marshal to an empty array), never omitted.
package model
