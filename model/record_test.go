package model

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// ============================================================================
// StructuredRecord Tests
// ============================================================================

func TestNewStructuredRecord(t *testing.T) {
	rec := NewStructuredRecord()

	if rec.DocumentType != DocumentTypeUnknown {
		t.Errorf("DocumentType = %q, want %q", rec.DocumentType, DocumentTypeUnknown)
	}
	if rec.InvoiceNumber != nil {
		t.Errorf("InvoiceNumber = %v, want nil", *rec.InvoiceNumber)
	}
	if rec.Date != nil {
		t.Errorf("Date = %v, want nil", *rec.Date)
	}
	if rec.Summary.Subtotal != nil || rec.Summary.VAT != nil || rec.Summary.Total != nil {
		t.Error("Summary fields should start nil")
	}
	if rec.LineItems == nil {
		t.Error("LineItems should be an empty slice, not nil")
	}
	if len(rec.LineItems) != 0 {
		t.Errorf("LineItems has %d entries, want 0", len(rec.LineItems))
	}
}

func TestStructuredRecordMarshalEmpty(t *testing.T) {
	// Absent fields serialize as explicit nulls and line items as an empty
	// array, never as omitted keys.
	data, err := json.Marshal(NewStructuredRecord())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	expected := `{"document_type":"Unknown","invoice_number":null,"date":null,` +
		`"summary":{"subtotal":null,"vat":null,"total":null},"detected_line_items":[]}`
	if string(data) != expected {
		t.Errorf("Marshal() = %s, want %s", data, expected)
	}
}

func TestStructuredRecordMarshalPopulated(t *testing.T) {
	rec := NewStructuredRecord()
	rec.DocumentType = DocumentTypeTaxInvoice
	rec.InvoiceNumber = strPtr("INV-2024-001")
	rec.Date = strPtr("15/01/2024")
	rec.Summary.VAT = floatPtr(17.0)
	rec.Summary.Total = floatPtr(117.0)
	rec.LineItems = []string{"Widget 2 50.00 100.00"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if decoded["document_type"] != "Tax Invoice" {
		t.Errorf("document_type = %v, want Tax Invoice", decoded["document_type"])
	}
	if decoded["invoice_number"] != "INV-2024-001" {
		t.Errorf("invoice_number = %v, want INV-2024-001", decoded["invoice_number"])
	}
	summary, ok := decoded["summary"].(map[string]any)
	if !ok {
		t.Fatal("summary is not an object")
	}
	if summary["subtotal"] != nil {
		t.Errorf("subtotal = %v, want null", summary["subtotal"])
	}
	if summary["total"] != 117.0 {
		t.Errorf("total = %v, want 117", summary["total"])
	}
}

func TestStructuredRecordRoundTrip(t *testing.T) {
	original := NewStructuredRecord()
	original.DocumentType = DocumentTypeReceipt
	original.Date = strPtr("01.02.2023")
	original.Summary.Total = floatPtr(250.50)
	original.LineItems = []string{"item one 1 100.00", "item two 2 75.25"}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var restored StructuredRecord
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if restored.DocumentType != original.DocumentType {
		t.Errorf("DocumentType = %q, want %q", restored.DocumentType, original.DocumentType)
	}
	if restored.InvoiceNumber != nil {
		t.Errorf("InvoiceNumber = %v, want nil", *restored.InvoiceNumber)
	}
	if restored.Date == nil || *restored.Date != *original.Date {
		t.Errorf("Date = %v, want %v", restored.Date, *original.Date)
	}
	if restored.Summary.Total == nil || *restored.Summary.Total != *original.Summary.Total {
		t.Errorf("Total = %v, want %v", restored.Summary.Total, *original.Summary.Total)
	}
	if len(restored.LineItems) != 2 {
		t.Fatalf("LineItems has %d entries, want 2", len(restored.LineItems))
	}
	if restored.LineItems[1] != original.LineItems[1] {
		t.Errorf("LineItems[1] = %q, want %q", restored.LineItems[1], original.LineItems[1])
	}
}

// ============================================================================
// DocumentReport Tests
// ============================================================================

func TestDocumentReportMarshal(t *testing.T) {
	page := NewStructuredRecord()
	page.DocumentType = DocumentTypeReceipt

	report := DocumentReport{
		Document: NewStructuredRecord(),
		Pages: []PageAnalysis{
			{PageNumber: 1, Analysis: page, RawText: "some text"},
		},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if _, ok := decoded["document_analysis"]; !ok {
		t.Error("missing document_analysis key")
	}
	pages, ok := decoded["per_page_analysis"].([]any)
	if !ok {
		t.Fatal("per_page_analysis is not an array")
	}
	if len(pages) != 1 {
		t.Fatalf("per_page_analysis has %d entries, want 1", len(pages))
	}
	entry := pages[0].(map[string]any)
	if entry["page_number"] != 1.0 {
		t.Errorf("page_number = %v, want 1", entry["page_number"])
	}
	if entry["raw_text"] != "some text" {
		t.Errorf("raw_text = %v, want %q", entry["raw_text"], "some text")
	}
	if _, ok := entry["analysis"]; !ok {
		t.Error("missing analysis key in page entry")
	}
}

// ============================================================================
// TableResult Tests
// ============================================================================

func TestTableResultMarshalJSON(t *testing.T) {
	table := NewTable(2, 2)
	table.SetCell(0, 0, Cell{Text: "Item"})
	table.SetCell(0, 1, Cell{Text: "Price"})
	table.SetCell(1, 0, Cell{Text: "Widget"})
	table.SetCell(1, 1, Cell{Text: "9.99"})

	result := TableResult{Page: 2, TableNumber: 3, Table: table}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if decoded["page"] != 2.0 {
		t.Errorf("page = %v, want 2", decoded["page"])
	}
	if decoded["table_number"] != 3.0 {
		t.Errorf("table_number = %v, want 3", decoded["table_number"])
	}
	rows, ok := decoded["table_data"].([]any)
	if !ok {
		t.Fatal("table_data is not an array")
	}
	if len(rows) != 2 {
		t.Fatalf("table_data has %d rows, want 2", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["0"] != "Item" || first["1"] != "Price" {
		t.Errorf("first row = %v, want column-indexed keys", first)
	}
}
