package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/Azure/go-autorest/autorest"
)

// Azure recognizes text through the Azure Computer Vision OCR API.
// Unlike the Tesseract engine it needs no build tag or local install,
// only network access to a Cognitive Services resource.
type Azure struct {
	client   *computervision.BaseClient
	language computervision.OcrLanguages
}

// NewAzure creates an Azure engine for the given Cognitive Services
// endpoint and subscription key. Recognition defaults to automatic
// language detection, which covers scripts the OCR language list does
// not name individually.
func NewAzure(endpoint, apiKey string) *Azure {
	client := computervision.New(endpoint)
	client.Authorizer = autorest.NewCognitiveServicesAuthorizer(apiKey)

	return &Azure{
		client:   &client,
		language: computervision.OcrLanguagesUnk,
	}
}

// SetLanguage sets the recognition language. Use computervision.OcrLanguagesUnk for
// automatic detection.
func (a *Azure) SetLanguage(lang computervision.OcrLanguages) {
	a.language = lang
}

// Close is a no-op; the Azure engine holds no local resources.
func (a *Azure) Close() error {
	return nil
}

// Recognize performs OCR on a page image by sending it to the Computer
// Vision OCR endpoint and joining the recognized regions into lines.
func (a *Azure) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}

	imageReader := io.NopCloser(bytes.NewReader(buf.Bytes()))

	result, err := a.client.RecognizePrintedTextInStream(
		context.Background(),
		true,
		imageReader,
		a.language,
	)
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}

	return joinOCRResult(result), nil
}

// joinOCRResult flattens an OCR result into plain text, one recognized
// line per output line with words separated by spaces.
func joinOCRResult(result computervision.OcrResult) string {
	if result.Regions == nil {
		return ""
	}

	var lines []string
	for _, region := range *result.Regions {
		if region.Lines == nil {
			continue
		}
		for _, line := range *region.Lines {
			if line.Words == nil {
				continue
			}
			var words []string
			for _, word := range *line.Words {
				if word.Text != nil {
					words = append(words, *word.Text)
				}
			}
			if len(words) > 0 {
				lines = append(lines, strings.Join(words, " "))
			}
		}
	}

	return strings.Join(lines, "\n")
}
