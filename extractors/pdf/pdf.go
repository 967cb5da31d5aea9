// Package pdf extracts plain text from PDF documents for measurement.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/sevigo/textkit/schema"
)

// ErrNoText is returned when a document yields no extractable text.
var ErrNoText = errors.New("no text extracted from PDF")

var (
	horizontalSpaceRE = regexp.MustCompile(`[ \t]+`)
	blankLineRE       = regexp.MustCompile(`\n[ \t]*\n`)
	manyNewlinesRE    = regexp.MustCompile(`\n{3,}`)
)

// PDFPlugin implements schema.ExtractorPlugin for PDF files
type PDFPlugin struct {
	logger *slog.Logger
}

// NewPDFPlugin creates a new PDF extractor plugin
func NewPDFPlugin(logger *slog.Logger) schema.ExtractorPlugin {
	return &PDFPlugin{
		logger: logger,
	}
}

func (p *PDFPlugin) Name() string {
	return "pdf"
}

func (p *PDFPlugin) Extensions() []string {
	return []string{".pdf"}
}

func (p *PDFPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}

// ExtractText pulls the plain text out of every page. Pages are separated
// by a blank line so each page boundary counts as a paragraph break.
func (p *PDFPlugin) ExtractText(content []byte, path string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader for %s: %w", path, err)
	}

	numPages := reader.NumPage()
	p.logger.Debug("PDF text extraction starting", "path", path, "pages", numPages)

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			p.logger.Warn("Skipping null page", "page", i, "path", path)
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Warn("Failed to extract page text", "page", i, "path", path, "error", err)
			continue
		}

		if cleaned := cleanExtractedText(pageText); cleaned != "" {
			pages = append(pages, cleaned)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoText, path)
	}

	p.logger.Debug("PDF text extraction finished", "path", path, "pages_with_text", len(pages))
	return strings.Join(pages, "\n\n"), nil
}

// cleanExtractedText normalizes the whitespace noise PDF extraction leaves behind
func cleanExtractedText(text string) string {
	text = horizontalSpaceRE.ReplaceAllString(text, " ")
	text = blankLineRE.ReplaceAllString(text, "\n\n")
	text = manyNewlinesRE.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
