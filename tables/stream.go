package tables

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"

	"github.com/docsift/docsift/model"
)

// span is a positioned run of text on a page. Coordinates are points with a
// top-left origin, as reported by the document text layer.
type span struct {
	text string
	left float64
	top  float64
}

var (
	topStyleRe    = regexp.MustCompile(`top:([0-9.]+)pt`)
	leftStyleRe   = regexp.MustCompile(`left:([0-9.]+)pt`)
	heightStyleRe = regexp.MustCompile(`height:([0-9.]+)pt`)
)

// StreamExtractor reconstructs borderless tables from the PDF text layer by
// clustering positioned text runs into rows and columns.
type StreamExtractor struct {
	config Config
}

// NewStreamExtractor creates a stream extractor with default configuration.
func NewStreamExtractor() *StreamExtractor {
	return &StreamExtractor{config: DefaultConfig()}
}

// Name returns "stream".
func (e *StreamExtractor) Name() string {
	return "stream"
}

// Configure sets extractor parameters. Zero values fall back to defaults.
func (e *StreamExtractor) Configure(config Config) error {
	def := DefaultConfig()
	if config.DPI <= 0 {
		config.DPI = def.DPI
	}
	if config.MinRows <= 0 {
		config.MinRows = def.MinRows
	}
	if config.MinCols <= 0 {
		config.MinCols = def.MinCols
	}
	if config.RowTolerance <= 0 {
		config.RowTolerance = def.RowTolerance
	}
	if config.ColumnTolerance <= 0 {
		config.ColumnTolerance = def.ColumnTolerance
	}
	e.config = config
	return nil
}

// ExtractTables extracts the table contained in the given region of the
// page. The region is in image-pixel coordinates at the configured DPI.
func (e *StreamExtractor) ExtractTables(pdfPath string, page int, region model.Region) ([]*model.Table, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	if page < 1 || page > doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range: document has %d pages", page, doc.NumPage())
	}

	html, err := doc.HTML(page-1, true)
	if err != nil {
		return nil, fmt.Errorf("reading text layer of page %d: %w", page, err)
	}

	spans, pageHeight, err := parsePositionedText(html)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	inRegion := filterSpans(spans, region, pageHeight, e.config.DPI)
	if len(inRegion) == 0 {
		return nil, nil
	}

	table := e.buildTable(inRegion, pageHeight)
	if table.RowCount() < e.config.MinRows || table.ColCount() < e.config.MinCols {
		return nil, nil
	}
	return []*model.Table{table}, nil
}

// parsePositionedText extracts positioned text runs and the page height from
// the text layer HTML. Each line is an absolutely positioned paragraph with
// top/left style coordinates in points.
func parsePositionedText(html string) ([]span, float64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, 0, fmt.Errorf("parsing text layer: %w", err)
	}

	var pageHeight float64
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		style, ok := s.Attr("style")
		if !ok {
			return true
		}
		if m := heightStyleRe.FindStringSubmatch(style); m != nil {
			pageHeight, _ = strconv.ParseFloat(m[1], 64)
			return false
		}
		return true
	})
	if pageHeight == 0 {
		return nil, 0, fmt.Errorf("text layer reports no page dimensions")
	}

	var spans []span
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		style, ok := s.Attr("style")
		if !ok {
			return
		}
		tm := topStyleRe.FindStringSubmatch(style)
		lm := leftStyleRe.FindStringSubmatch(style)
		if tm == nil || lm == nil {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		top, err1 := strconv.ParseFloat(tm[1], 64)
		left, err2 := strconv.ParseFloat(lm[1], 64)
		if err1 != nil || err2 != nil {
			return
		}
		spans = append(spans, span{text: text, left: left, top: top})
	})
	return spans, pageHeight, nil
}

// filterSpans keeps the spans whose anchor lies inside the region. The
// region uses image pixels with a bottom-left origin; spans use points with
// a top-left origin.
func filterSpans(spans []span, region model.Region, pageHeight, dpi float64) []span {
	scale := 72.0 / dpi
	left := region.X1 * scale
	right := region.X2 * scale
	top := pageHeight - region.Y1*scale
	bottom := pageHeight - region.Y2*scale

	var kept []span
	for _, s := range spans {
		if s.left >= left && s.left <= right && s.top >= top && s.top <= bottom {
			kept = append(kept, s)
		}
	}
	return kept
}

// buildTable clusters spans into a row/column grid.
func (e *StreamExtractor) buildTable(spans []span, pageHeight float64) *model.Table {
	// Rows: group spans whose vertical position matches the first span of
	// the row within the tolerance. Anchoring on the first span prevents
	// drift across slightly uneven baselines.
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].top < spans[j].top })
	var rows [][]span
	for _, s := range spans {
		if len(rows) == 0 || s.top-rows[len(rows)-1][0].top > e.config.RowTolerance {
			rows = append(rows, []span{s})
		} else {
			last := len(rows) - 1
			rows[last] = append(rows[last], s)
		}
	}

	// Columns: cluster the distinct horizontal anchors, again against the
	// cluster start.
	lefts := make([]float64, len(spans))
	for i, s := range spans {
		lefts[i] = s.left
	}
	sort.Float64s(lefts)
	var cols []float64
	for _, l := range lefts {
		if len(cols) == 0 || l-cols[len(cols)-1] > e.config.ColumnTolerance {
			cols = append(cols, l)
		}
	}

	table := model.NewTable(len(rows), len(cols))
	minLeft, maxLeft := spans[0].left, spans[0].left
	minTop, maxTop := spans[0].top, spans[0].top
	for ri, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].left < row[j].left })
		for _, s := range row {
			ci := columnIndex(cols, s.left, e.config.ColumnTolerance)
			cell := table.GetCell(ri, ci)
			if cell != nil && cell.Text != "" {
				table.SetCell(ri, ci, model.Cell{Text: cell.Text + " " + s.text})
			} else {
				table.SetCell(ri, ci, model.Cell{Text: s.text})
			}

			if s.left < minLeft {
				minLeft = s.left
			}
			if s.left > maxLeft {
				maxLeft = s.left
			}
			if s.top < minTop {
				minTop = s.top
			}
			if s.top > maxTop {
				maxTop = s.top
			}
		}
	}
	table.BBox = model.NewBBox(minLeft, pageHeight-maxTop, maxLeft-minLeft, maxTop-minTop)
	return table
}

// columnIndex returns the column whose anchor the span belongs to.
func columnIndex(cols []float64, left, tolerance float64) int {
	for i := len(cols) - 1; i >= 0; i-- {
		if left >= cols[i]-tolerance {
			return i
		}
	}
	return 0
}
