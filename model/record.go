package model

import "encoding/json"

// DocumentType classifies the document a text scope came from.
type DocumentType string

const (
	// DocumentTypeTaxInvoice marks text carrying the tax-invoice phrase.
	DocumentTypeTaxInvoice DocumentType = "Tax Invoice"
	// DocumentTypeReceipt marks text carrying the receipt phrase.
	DocumentTypeReceipt DocumentType = "Receipt"
	// DocumentTypeUnknown is the default when neither phrase is present.
	DocumentTypeUnknown DocumentType = "Unknown"
)

// Summary holds the monetary totals recognized in a text scope. Fields are
// nil until a labeled amount is found; the first labeled amount wins.
type Summary struct {
	Subtotal *float64 `json:"subtotal"`
	VAT      *float64 `json:"vat"`
	Total    *float64 `json:"total"`
}

// StructuredRecord is the semantic-field extraction result for one text
// scope (a page or a whole document). Absent scalar fields are nil and
// marshal to JSON null; LineItems is always non-nil and marshals to an
// array. A record is immutable once returned.
type StructuredRecord struct {
	DocumentType  DocumentType `json:"document_type"`
	InvoiceNumber *string      `json:"invoice_number"`
	Date          *string      `json:"date"`
	Summary       Summary      `json:"summary"`
	LineItems     []string     `json:"detected_line_items"`
}

// NewStructuredRecord returns a record with every field in its explicit
// absent state.
func NewStructuredRecord() *StructuredRecord {
	return &StructuredRecord{
		DocumentType: DocumentTypeUnknown,
		LineItems:    []string{},
	}
}

// PageAnalysis pairs a page's structured record with the raw OCR text it was
// derived from.
type PageAnalysis struct {
	PageNumber int               `json:"page_number"`
	Analysis   *StructuredRecord `json:"analysis"`
	RawText    string            `json:"raw_text"`
}

// DocumentReport is the OCR pipeline result: one record for the document as
// a whole plus one record per successfully recognized page, in page order.
type DocumentReport struct {
	Document *StructuredRecord `json:"document_analysis"`
	Pages    []PageAnalysis    `json:"per_page_analysis"`
}

// MarshalJSON renders the table result in its wire shape: the page number,
// the running table number and the row objects keyed by column labels.
func (tr TableResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Page        int                 `json:"page"`
		TableNumber int                 `json:"table_number"`
		TableData   []map[string]string `json:"table_data"`
	}{
		Page:        tr.Page,
		TableNumber: tr.TableNumber,
		TableData:   tr.Table.Records(),
	})
}
