package config

import (
	"fmt"
	"net/url"

	"github.com/docsift/docsift/raster"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if !raster.ImageFormat(c.Output.ImageFormat).Valid() {
		errors = append(errors, ValidationError{
			Field:   "output.image_format",
			Message: fmt.Sprintf("must be %q or %q", raster.FormatPNG, raster.FormatTIFF),
		})
	}

	if c.Raster.DPI <= 0 {
		errors = append(errors, ValidationError{
			Field:   "raster.dpi",
			Message: "dpi must be positive",
		})
	}

	if c.Detector.MinWidth < 1 {
		errors = append(errors, ValidationError{
			Field:   "detector.min_width",
			Message: "min_width must be positive",
		})
	}
	if c.Detector.MinHeight < 1 {
		errors = append(errors, ValidationError{
			Field:   "detector.min_height",
			Message: "min_height must be positive",
		})
	}
	if c.Detector.MaxWidthRatio <= 0 || c.Detector.MaxWidthRatio > 1 {
		errors = append(errors, ValidationError{
			Field:   "detector.max_width_ratio",
			Message: "max_width_ratio must be between 0 and 1",
		})
	}
	if c.Detector.MaxHeightRatio <= 0 || c.Detector.MaxHeightRatio > 1 {
		errors = append(errors, ValidationError{
			Field:   "detector.max_height_ratio",
			Message: "max_height_ratio must be between 0 and 1",
		})
	}

	if c.Tables.MinRows < 1 {
		errors = append(errors, ValidationError{
			Field:   "tables.min_rows",
			Message: "min_rows must be positive",
		})
	}
	if c.Tables.MinCols < 1 {
		errors = append(errors, ValidationError{
			Field:   "tables.min_cols",
			Message: "min_cols must be positive",
		})
	}
	if c.Tables.RowTolerance <= 0 {
		errors = append(errors, ValidationError{
			Field:   "tables.row_tolerance",
			Message: "row_tolerance must be positive",
		})
	}
	if c.Tables.ColumnTolerance <= 0 {
		errors = append(errors, ValidationError{
			Field:   "tables.column_tolerance",
			Message: "column_tolerance must be positive",
		})
	}

	if c.OCR.Languages == "" {
		errors = append(errors, ValidationError{
			Field:   "ocr.languages",
			Message: "languages is required",
		})
	}

	if (c.OCR.Azure.Endpoint == "") != (c.OCR.Azure.Key == "") {
		errors = append(errors, ValidationError{
			Field:   "ocr.azure",
			Message: "endpoint and key must be set together",
		})
	}
	if c.OCR.Azure.Endpoint != "" {
		if _, err := url.ParseRequestURI(c.OCR.Azure.Endpoint); err != nil {
			errors = append(errors, ValidationError{
				Field:   "ocr.azure.endpoint",
				Message: "invalid endpoint URL",
			})
		}
	}

	return errors
}
