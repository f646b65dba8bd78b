// Package structure converts raw recognized text into structured document
// records.
//
// The analysis is a fixed sequence of regular-expression heuristics tuned for
// Hebrew tax invoices and receipts with mixed Hebrew/Latin content:
//
//  1. Whitespace normalization (doubled spaces collapsed)
//  2. Document classification (tax invoice / receipt markers)
//  3. Date and invoice-number capture
//  4. Line-scoped summary amounts (total and VAT)
//  5. Line-item detection by numeric density
//
// The steps are independent. A step that finds nothing leaves its field
// absent and never affects the other steps.
//
// # Usage
//
// [Structure] is pure and total. It accepts any string and never returns an
// error; missing fields are marked with nil pointers and an empty line-item
// slice rather than omitted:
//
//	record := structure.Structure(rawText)
//	if record.Summary.Total != nil {
//		fmt.Printf("total: %.2f\n", *record.Summary.Total)
//	}
//
// Summary amounts are first-match-wins across lines: once a total or VAT
// value has been captured, later candidate lines are ignored.
package structure
