// Command docsift extracts tables and structured fields from PDF
// documents.
//
//	docsift tables invoice.pdf
//	docsift analyze --enhance invoice.pdf
//
// Configuration is read from docsift.yaml when present and can be
// overridden per run with flags. Azure OCR credentials come from the
// AZURE_CV_ENDPOINT and AZURE_CV_KEY environment variables or a .env
// file.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/ocr"
	"github.com/docsift/docsift/raster"
	"github.com/docsift/docsift/regions"
	"github.com/docsift/docsift/tables"
	"github.com/docsift/docsift/text"
)

func main() {
	// A .env file is optional; the environment may already hold the
	// Azure credentials.
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "docsift",
		Usage:   "extract tables and structured fields from PDF documents",
		Version: "0.1.0",
		Commands: []*cli.Command{
			tablesCommand(),
			analyzeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a docsift.yaml configuration file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "directory for result files",
		},
		&cli.StringFlag{
			Name:    "pages",
			Aliases: []string{"p"},
			Usage:   "pages to process, e.g. \"1,3-5\" (default all)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress progress and summary output",
		},
	}
}

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:      "tables",
		Usage:     "detect and extract tables into JSON, Markdown and page images",
		ArgsUsage: "<file.pdf>",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "page image format: png or tiff",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "also write extracted tables as CSV",
			},
		),
		Action: tablesAction,
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "recognize page text with OCR and distill document fields",
		ArgsUsage: "<file.pdf>",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:  "enhance",
				Usage: "preprocess page images before recognition",
			},
			&cli.BoolFlag{
				Name:  "azure",
				Usage: "recognize with Azure Computer Vision instead of Tesseract",
			},
		),
		Action: analyzeAction,
	}
}

func tablesAction(c *cli.Context) error {
	input, err := inputFile(c)
	if err != nil {
		return err
	}
	cfg, err := loadRunConfig(c)
	if err != nil {
		return err
	}
	quiet := c.Bool("quiet")

	extractor := tables.GetExtractor("stream")
	if extractor == nil {
		return fmt.Errorf("stream extractor not registered")
	}
	if err := extractor.Configure(cfg.TablesEngine()); err != nil {
		return fmt.Errorf("configuring extractor: %w", err)
	}

	pipe := docsift.Open(input).
		OutputDir(cfg.Output.Dir).
		ImageFormat(raster.ImageFormat(cfg.Output.ImageFormat)).
		WithRasterizer(raster.NewMuPDF(cfg.RasterEngine())).
		WithDetector(regions.NewLayoutDetector(cfg.DetectorEngine())).
		WithTableExtractor(extractor).
		WithLogger(newLogger(quiet))

	pages, err := parsePages(c.String("pages"))
	if err != nil {
		return err
	}
	if len(pages) > 0 {
		pipe = pipe.Pages(pages...)
	}
	if cfg.Output.WriteCSV {
		pipe = pipe.WriteCSV()
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		color.Blue("Extracting tables from %s\n", input)
		pipe = pipe.OnPage(func(page, total int) {
			if bar == nil {
				bar = pageBar(total, "Processing pages...")
			}
			bar.Set(page)
		})
	}

	results, warnings, err := pipe.Tables()
	finishBar(bar)
	if errors.Is(err, docsift.ErrNoTables) {
		return cli.Exit(color.YellowString("No tables found in %s", input), 1)
	}
	if err != nil {
		return err
	}

	if !quiet {
		printWarnings(warnings)
		color.Green("✓ Extracted %d tables to %s\n", len(results), cfg.Output.Dir)
	}
	return nil
}

func analyzeAction(c *cli.Context) error {
	input, err := inputFile(c)
	if err != nil {
		return err
	}
	cfg, err := loadRunConfig(c)
	if err != nil {
		return err
	}
	quiet := c.Bool("quiet")

	var engine ocr.Engine
	if c.Bool("azure") {
		if cfg.OCR.Azure.Endpoint == "" || cfg.OCR.Azure.Key == "" {
			return cli.Exit("Azure OCR needs AZURE_CV_ENDPOINT and AZURE_CV_KEY set", 2)
		}
		engine = ocr.NewAzure(cfg.OCR.Azure.Endpoint, cfg.OCR.Azure.Key)
	} else {
		tess, err := ocr.NewTesseract(cfg.OCREngine())
		if err != nil {
			return fmt.Errorf("initializing Tesseract: %w", err)
		}
		engine = tess
	}
	defer engine.Close()

	pipe := docsift.Open(input).
		OutputDir(cfg.Output.Dir).
		WithRasterizer(raster.NewMuPDF(cfg.RasterEngine())).
		WithRecognizer(engine).
		WithLogger(newLogger(quiet))

	pages, err := parsePages(c.String("pages"))
	if err != nil {
		return err
	}
	if len(pages) > 0 {
		pipe = pipe.Pages(pages...)
	}
	if cfg.OCR.Enhance {
		pipe = pipe.EnhanceImages()
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		color.Blue("Analyzing %s\n", input)
		pipe = pipe.OnPage(func(page, total int) {
			if bar == nil {
				bar = pageBar(total, "Recognizing pages...")
			}
			bar.Set(page)
		})
	}

	report, warnings, err := pipe.Analyze()
	finishBar(bar)
	if errors.Is(err, docsift.ErrNoText) {
		return cli.Exit(color.YellowString("No text recognized in %s", input), 1)
	}
	if err != nil {
		return err
	}

	if !quiet {
		printWarnings(warnings)
		color.Green("✓ Analyzed %d pages to %s\n", len(report.Pages), cfg.Output.Dir)
		printReport(report)
	}
	return nil
}

// printReport prints the document fields and a per-page script
// direction diagnostic, useful for spotting pages where OCR lost the
// Hebrew text.
func printReport(report *model.DocumentReport) {
	doc := report.Document
	fmt.Printf("  document type: %s\n", doc.DocumentType)
	if doc.InvoiceNumber != nil {
		fmt.Printf("  invoice number: %s\n", *doc.InvoiceNumber)
	}
	if doc.Date != nil {
		fmt.Printf("  date: %s\n", *doc.Date)
	}
	if doc.Summary.Total != nil {
		fmt.Printf("  total: %.2f\n", *doc.Summary.Total)
	}
	if doc.Summary.VAT != nil {
		fmt.Printf("  vat: %.2f\n", *doc.Summary.VAT)
	}
	for _, page := range report.Pages {
		direction := text.DetectDirection(page.RawText)
		fmt.Printf("  page %d: %s, %s text, %d line items\n",
			page.PageNumber, page.Analysis.DocumentType, direction,
			len(page.Analysis.LineItems))
	}
}

func printWarnings(warnings []docsift.Warning) {
	if len(warnings) == 0 {
		return
	}
	color.Yellow("Warnings:\n%s", docsift.FormatWarnings(warnings))
}

func inputFile(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		cli.ShowSubcommandHelp(c)
		return "", cli.Exit("expected exactly one input PDF", 2)
	}
	return c.Args().First(), nil
}

// loadRunConfig loads the configuration file and applies flag
// overrides. Flags a command does not define read as unset.
func loadRunConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("output") {
		cfg.Output.Dir = c.String("output")
	}
	if c.IsSet("format") {
		cfg.Output.ImageFormat = c.String("format")
	}
	if c.Bool("csv") {
		cfg.Output.WriteCSV = true
	}
	if c.Bool("enhance") {
		cfg.OCR.Enhance = true
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			color.Red("config: %s", e.Error())
		}
		return nil, fmt.Errorf("invalid configuration")
	}
	return cfg, nil
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func pageBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}
	bar.Finish()
	fmt.Println()
}

// parsePages parses a page selection such as "1,3-5" into page numbers.
func parsePages(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if from, to, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(from)
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			end, err := strconv.Atoi(to)
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for p := start; p <= end; p++ {
				pages = append(pages, p)
			}
			continue
		}

		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, p)
	}
	return pages, nil
}
