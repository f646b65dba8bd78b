// Package config loads docsift run configuration from YAML files and the
// environment. Values left unset fall back to the engine defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/docsift/docsift/ocr"
	"github.com/docsift/docsift/raster"
	"github.com/docsift/docsift/regions"
	"github.com/docsift/docsift/report"
	"github.com/docsift/docsift/tables"
)

// OutputConfig controls where and how result files are written.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	ImageFormat string `yaml:"image_format"`
	WriteCSV    bool   `yaml:"write_csv"`
}

// RasterConfig controls page rendering.
type RasterConfig struct {
	DPI float64 `yaml:"dpi"`
}

// DetectorConfig controls table region detection thresholds.
type DetectorConfig struct {
	MinWidth       int     `yaml:"min_width"`
	MinHeight      int     `yaml:"min_height"`
	MaxWidthRatio  float64 `yaml:"max_width_ratio"`
	MaxHeightRatio float64 `yaml:"max_height_ratio"`
}

// TablesConfig controls the stream table extractor.
type TablesConfig struct {
	MinRows         int     `yaml:"min_rows"`
	MinCols         int     `yaml:"min_cols"`
	RowTolerance    float64 `yaml:"row_tolerance"`
	ColumnTolerance float64 `yaml:"column_tolerance"`
}

// AzureConfig holds the Azure Computer Vision credentials.
type AzureConfig struct {
	Endpoint string `yaml:"endpoint"`
	Key      string `yaml:"key"`
}

// OCRConfig controls text recognition.
type OCRConfig struct {
	Languages      string      `yaml:"languages"`
	TessdataPrefix string      `yaml:"tessdata_prefix"`
	Enhance        bool        `yaml:"enhance"`
	Azure          AzureConfig `yaml:"azure"`
}

// Config is the full docsift configuration.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Raster   RasterConfig   `yaml:"raster"`
	Detector DetectorConfig `yaml:"detector"`
	Tables   TablesConfig   `yaml:"tables"`
	OCR      OCRConfig      `yaml:"ocr"`
}

// Load reads the configuration from the given path. When path is empty,
// the default locations are tried in order; when none exists the
// defaults are returned. Environment variables override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		locations := []string{
			"docsift.yaml",
			"docsift.yml",
			filepath.Join(os.Getenv("HOME"), ".config/docsift/config.yaml"),
			"/etc/docsift/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	mergeWithEnv(&config)
	applyDefaults(&config)

	return &config, nil
}

func defaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Output.Dir == "" {
		config.Output.Dir = "output"
	}
	if config.Output.ImageFormat == "" {
		config.Output.ImageFormat = string(raster.FormatPNG)
	}

	if config.Raster.DPI == 0 {
		config.Raster.DPI = raster.DefaultConfig().DPI
	}

	def := regions.DefaultConfig()
	if config.Detector.MinWidth == 0 {
		config.Detector.MinWidth = def.MinWidth
	}
	if config.Detector.MinHeight == 0 {
		config.Detector.MinHeight = def.MinHeight
	}
	if config.Detector.MaxWidthRatio == 0 {
		config.Detector.MaxWidthRatio = def.MaxWidthRatio
	}
	if config.Detector.MaxHeightRatio == 0 {
		config.Detector.MaxHeightRatio = def.MaxHeightRatio
	}

	tdef := tables.DefaultConfig()
	if config.Tables.MinRows == 0 {
		config.Tables.MinRows = tdef.MinRows
	}
	if config.Tables.MinCols == 0 {
		config.Tables.MinCols = tdef.MinCols
	}
	if config.Tables.RowTolerance == 0 {
		config.Tables.RowTolerance = tdef.RowTolerance
	}
	if config.Tables.ColumnTolerance == 0 {
		config.Tables.ColumnTolerance = tdef.ColumnTolerance
	}

	if config.OCR.Languages == "" {
		config.OCR.Languages = ocr.DefaultConfig().Languages
	}
}

func mergeWithEnv(config *Config) {
	if dir := os.Getenv("DOCSIFT_OUTPUT_DIR"); dir != "" {
		config.Output.Dir = dir
	}
	if endpoint := os.Getenv("AZURE_CV_ENDPOINT"); endpoint != "" {
		config.OCR.Azure.Endpoint = endpoint
	}
	if key := os.Getenv("AZURE_CV_KEY"); key != "" {
		config.OCR.Azure.Key = key
	}
}

// RasterEngine returns the raster configuration in engine form.
func (c *Config) RasterEngine() raster.Config {
	return raster.Config{DPI: c.Raster.DPI}
}

// DetectorEngine returns the detector configuration in engine form,
// keeping engine defaults for thresholds the file does not expose.
func (c *Config) DetectorEngine() regions.Config {
	cfg := regions.DefaultConfig()
	cfg.MinWidth = c.Detector.MinWidth
	cfg.MinHeight = c.Detector.MinHeight
	cfg.MaxWidthRatio = c.Detector.MaxWidthRatio
	cfg.MaxHeightRatio = c.Detector.MaxHeightRatio
	return cfg
}

// TablesEngine returns the extractor configuration in engine form. The
// extractor DPI follows the raster DPI so region coordinates line up.
func (c *Config) TablesEngine() tables.Config {
	return tables.Config{
		DPI:             c.Raster.DPI,
		MinRows:         c.Tables.MinRows,
		MinCols:         c.Tables.MinCols,
		RowTolerance:    c.Tables.RowTolerance,
		ColumnTolerance: c.Tables.ColumnTolerance,
	}
}

// OCREngine returns the Tesseract configuration in engine form.
func (c *Config) OCREngine() ocr.Config {
	return ocr.Config{
		Languages:      c.OCR.Languages,
		TessdataPrefix: c.OCR.TessdataPrefix,
	}
}

// ReportEngine returns the report writer configuration in engine form.
func (c *Config) ReportEngine() report.Config {
	return report.Config{
		Dir:         c.Output.Dir,
		ImageFormat: raster.ImageFormat(c.Output.ImageFormat),
	}
}
