package docsift

import "errors"

// Sentinel errors reported when a document yields nothing to write.
// Page images already written stay on disk; the table or report files
// are not created.
var (
	// ErrNoTables indicates no detected region produced a table.
	ErrNoTables = errors.New("no tables found in document")

	// ErrNoText indicates OCR recognized no text on any page.
	ErrNoText = errors.New("no text recognized in document")
)
