package report

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/raster"
)

func newTestImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func newTestTable(t *testing.T, cells [][]string) *model.Table {
	t.Helper()
	table := model.NewTable(len(cells), len(cells[0]))
	for r, row := range cells {
		for c, text := range row {
			if err := table.SetCell(r, c, model.Cell{Text: text}); err != nil {
				t.Fatalf("SetCell(%d,%d) failed: %v", r, c, err)
			}
		}
	}
	return table
}

func TestNewWriterDefaults(t *testing.T) {
	w := NewWriter(Config{})

	if got := w.Dir(); got != "output" {
		t.Errorf("Dir() = %q, want %q", got, "output")
	}
	if got := w.PageImagePath(1); got != filepath.Join("output", "page_1.png") {
		t.Errorf("PageImagePath(1) = %q, want %q", got, filepath.Join("output", "page_1.png"))
	}
	if got := w.DetectedImagePath(2); got != filepath.Join("output", "page_2_detected.png") {
		t.Errorf("DetectedImagePath(2) = %q, want %q", got, filepath.Join("output", "page_2_detected.png"))
	}
}

func TestEnsureDirCreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	w := NewWriter(Config{Dir: dir})

	if err := w.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("output directory missing: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestWritePageImagePNG(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir})

	page := raster.PageImage{Number: 1, Image: newTestImage(20, 10), DPI: 300}
	path, err := w.WritePageImage(page)
	if err != nil {
		t.Fatalf("WritePageImage() failed: %v", err)
	}
	if filepath.Base(path) != "page_1.png" {
		t.Errorf("path = %q, want base %q", path, "page_1.png")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written image: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written image: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("decoded bounds = %v, want 20x10", img.Bounds())
	}
}

func TestWritePageImageTIFF(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir, ImageFormat: raster.FormatTIFF})

	page := raster.PageImage{Number: 4, Image: newTestImage(8, 8), DPI: 300}
	path, err := w.WritePageImage(page)
	if err != nil {
		t.Fatalf("WritePageImage() failed: %v", err)
	}
	if filepath.Base(path) != "page_4.tiff" {
		t.Errorf("path = %q, want base %q", path, "page_4.tiff")
	}
}

func TestWriteDetectedImageAlwaysPNG(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir, ImageFormat: raster.FormatTIFF})

	page := raster.PageImage{Number: 3, Image: newTestImage(8, 8), DPI: 300}
	path, err := w.WriteDetectedImage(page)
	if err != nil {
		t.Fatalf("WriteDetectedImage() failed: %v", err)
	}
	if filepath.Base(path) != "page_3_detected.png" {
		t.Errorf("path = %q, want base %q", path, "page_3_detected.png")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written image: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("detection image is not PNG: %v", err)
	}
}

func TestWriteTablesJSON(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir})

	table := newTestTable(t, [][]string{{"a", "b"}})
	results := []model.TableResult{{Page: 1, TableNumber: 1, Table: table}}

	path, err := w.WriteTablesJSON(results)
	if err != nil {
		t.Fatalf("WriteTablesJSON() failed: %v", err)
	}
	if filepath.Base(path) != TablesJSONFile {
		t.Errorf("path = %q, want base %q", path, TablesJSONFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	want := `[
    {
        "page": 1,
        "table_number": 1,
        "table_data": [
            {
                "0": "a",
                "1": "b"
            }
        ]
    }
]`
	if string(data) != want {
		t.Errorf("written JSON = %q, want %q", data, want)
	}
}

func TestWriteTablesMarkdown(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir})

	table := newTestTable(t, [][]string{{"Name", "Qty"}, {"Widget", "3"}})
	results := []model.TableResult{{Page: 1, TableNumber: 1, Table: table}}

	path, err := w.WriteTablesMarkdown(results)
	if err != nil {
		t.Fatalf("WriteTablesMarkdown() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	want := "## Page: 1, Table: 1\n\n" +
		"| Name | Qty |\n|---|---|\n| Widget | 3 |\n" +
		"\n---\n\n"
	if string(data) != want {
		t.Errorf("written Markdown = %q, want %q", data, want)
	}
}

func TestWriteTablesMarkdownMultiple(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir})

	first := newTestTable(t, [][]string{{"a", "b"}, {"c", "d"}})
	second := newTestTable(t, [][]string{{"x", "y"}, {"z", "w"}})
	results := []model.TableResult{
		{Page: 1, TableNumber: 1, Table: first},
		{Page: 2, TableNumber: 2, Table: second},
	}

	path, err := w.WriteTablesMarkdown(results)
	if err != nil {
		t.Fatalf("WriteTablesMarkdown() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "## Page: 1, Table: 1\n") {
		t.Errorf("missing first section header in %q", text)
	}
	if !strings.Contains(text, "## Page: 2, Table: 2\n") {
		t.Errorf("missing second section header in %q", text)
	}
	if got := strings.Count(text, "\n---\n"); got != 2 {
		t.Errorf("got %d separators, want 2", got)
	}
}

func TestWriteTablesCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir})

	first := newTestTable(t, [][]string{{"a", "b"}})
	second := newTestTable(t, [][]string{{"x", "y"}})
	results := []model.TableResult{
		{Page: 1, TableNumber: 1, Table: first},
		{Page: 1, TableNumber: 2, Table: second},
	}

	path, err := w.WriteTablesCSV(results)
	if err != nil {
		t.Fatalf("WriteTablesCSV() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	want := "a,b\n\nx,y\n"
	if string(data) != want {
		t.Errorf("written CSV = %q, want %q", data, want)
	}
}

func TestWriteDocumentReport(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(Config{Dir: dir})

	rec := model.NewStructuredRecord()
	rep := &model.DocumentReport{
		Document: rec,
		Pages: []model.PageAnalysis{
			{PageNumber: 1, Analysis: rec, RawText: "שלום"},
		},
	}

	path, err := w.WriteDocumentReport(rep)
	if err != nil {
		t.Fatalf("WriteDocumentReport() failed: %v", err)
	}
	if filepath.Base(path) != DocumentReportFile {
		t.Errorf("path = %q, want base %q", path, DocumentReportFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "{\n    \"document_analysis\": {") {
		t.Errorf("report does not start with indented document_analysis: %q", text[:min(len(text), 60)])
	}
	if !strings.Contains(text, `"per_page_analysis"`) {
		t.Error("report missing per_page_analysis")
	}
	if !strings.Contains(text, `"raw_text": "שלום"`) {
		t.Error("report does not carry raw text through unescaped")
	}
}
