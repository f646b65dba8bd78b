package structure

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docsift/docsift/model"
)

// Document classification markers. The tax-invoice marker is checked first;
// a document carrying both is a tax invoice.
const (
	taxInvoiceMarker = "חשבונית מס"
	receiptMarker    = "קבלה"
)

var (
	// Dates like 15/01/2024 or 01.02.23. Day-first order is assumed but not
	// validated.
	dateRe = regexp.MustCompile(`\d{2}[./]\d{2}[./]\d{2,4}`)

	// Invoice number: a Hebrew or English label, optional colon, then the
	// identifier. Whitespace after the label may span a line break.
	invoiceRe = regexp.MustCompile(`(?i)(?:חשבונית מס|חשבונית|מספר|invoice no\.?)\s*:?\s*([א-תA-Za-z0-9-]+)`)

	// Summary keyword families, matched per line.
	totalRe = regexp.MustCompile(`(?i)סה"כ לתשלום|סך הכל|סה"כ|Total`)
	vatRe   = regexp.MustCompile(`(?i)מע"מ|VAT|מ\.ע\.מ`)

	// A monetary amount: grouped thousands or a plain integer, with an
	// optional two-digit decimal part.
	amountRe = regexp.MustCompile(`(\d{1,3}(,\d{3})*|\d+)(\.\d{2})?`)

	// Any numeric token, used to score line-item candidates.
	numberRe = regexp.MustCompile(`\d+\.?\d*`)
)

// Structure analyzes recognized document text and extracts semantic fields
// into a StructuredRecord. Fields that cannot be found are left absent; the
// function never fails.
func Structure(raw string) *model.StructuredRecord {
	rec := model.NewStructuredRecord()

	// OCR output tends to double spaces around column gaps. A single collapse
	// pass is enough for the patterns below; runs of three or more spaces
	// shrink but do not fully collapse.
	text := strings.ReplaceAll(raw, "  ", " ")

	if strings.Contains(text, taxInvoiceMarker) {
		rec.DocumentType = model.DocumentTypeTaxInvoice
	} else if strings.Contains(text, receiptMarker) {
		rec.DocumentType = model.DocumentTypeReceipt
	}

	if m := dateRe.FindString(text); m != "" {
		rec.Date = &m
	}

	if m := invoiceRe.FindStringSubmatch(text); m != nil {
		rec.InvoiceNumber = &m[1]
	}

	lines := strings.Split(text, "\n")

	// Summary amounts are line-scoped: the first amount on a line carrying a
	// keyword claims the field. One line may set both total and VAT.
	for _, line := range lines {
		if rec.Summary.Total == nil && totalRe.MatchString(line) {
			if v, ok := firstAmount(line); ok {
				rec.Summary.Total = &v
			}
		}
		if rec.Summary.VAT == nil && vatRe.MatchString(line) {
			if v, ok := firstAmount(line); ok {
				rec.Summary.VAT = &v
			}
		}
	}

	// A line item is any line dense in numbers: at least two numeric tokens
	// and more than 15 bytes long. Summary lines qualify too and are kept.
	for _, line := range lines {
		if len(line) > 15 && len(numberRe.FindAllString(line, -1)) >= 2 {
			rec.LineItems = append(rec.LineItems, line)
		}
	}

	return rec
}

// firstAmount returns the first monetary amount on the line, thousands
// separators removed.
func firstAmount(line string) (float64, bool) {
	m := amountRe.FindString(line)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
