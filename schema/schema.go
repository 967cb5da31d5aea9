package schema

import (
	"fmt"
	"io/fs"
)

// Document is a piece of text together with arbitrary metadata about its
// origin (file path, page number, part index, ...).
type Document struct {
	PageContent string
	Metadata    map[string]any
}

func (d Document) String() string {
	return d.PageContent
}

func NewDocument(content string, metadata map[string]any) Document {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return Document{
		PageContent: content,
		Metadata:    metadata,
	}
}

// TextStats holds the measurements produced for a single document.
type TextStats struct {
	Bytes      int
	Chars      int
	Words      int
	Paragraphs int
	CJKChars   int
}

func (s TextStats) String() string {
	return fmt.Sprintf("%d bytes, %d chars, %d words, %d paragraphs",
		s.Bytes, s.Chars, s.Words, s.Paragraphs)
}

// Chunk is one byte-budgeted piece of a document. StartByte and EndByte are
// offsets into the source text; Content == source[StartByte:EndByte].
type Chunk struct {
	ID          string
	Index       int
	Content     string
	StartByte   int
	EndByte     int
	Identifier  string
	Annotations map[string]string
}

// ExtractorPlugin reduces a file format to the plain text that the
// measurement functions operate on.
type ExtractorPlugin interface {
	// Name returns the format name, e.g. "markdown".
	Name() string
	// Extensions returns the file extensions this plugin handles.
	Extensions() []string
	// CanHandle determines if this plugin can process the given file.
	CanHandle(path string, info fs.FileInfo) bool
	// ExtractText returns the plain text content of the raw file bytes.
	ExtractText(content []byte, path string) (string, error)
}
