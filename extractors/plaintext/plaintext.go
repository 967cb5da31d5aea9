// Package plaintext passes text files through to the measurement
// primitives, enforcing the valid-UTF-8 precondition at the boundary.
package plaintext

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sevigo/textkit/schema"
)

// ErrInvalidEncoding is returned for content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// TextPlugin implements schema.ExtractorPlugin for plain text files
type TextPlugin struct {
	logger *slog.Logger
}

// NewTextPlugin creates a new plain text extractor plugin
func NewTextPlugin(logger *slog.Logger) schema.ExtractorPlugin {
	return &TextPlugin{
		logger: logger,
	}
}

// Name returns "text" as the format name
func (p *TextPlugin) Name() string {
	return "text"
}

// Extensions returns file extensions for text files
func (p *TextPlugin) Extensions() []string {
	return []string{".txt", ".text", ".log"}
}

// CanHandle determines if this plugin can process the given file
func (p *TextPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, validExt := range p.Extensions() {
		if ext == validExt {
			return true
		}
	}

	// Extensionless files that are conventionally plain text
	if ext == "" {
		baseName := strings.ToLower(filepath.Base(path))
		textFiles := []string{"readme", "license", "changelog", "authors", "contributors"}
		for _, textFile := range textFiles {
			if baseName == textFile {
				return true
			}
		}
	}

	return false
}

// ExtractText returns the content unchanged after verifying its encoding.
func (p *TextPlugin) ExtractText(content []byte, path string) (string, error) {
	if !utf8.Valid(content) {
		p.logger.Warn("Rejecting file with invalid encoding", "path", path)
		return "", ErrInvalidEncoding
	}

	return string(content), nil
}
