// Package stats measures and partitions documents using the segmentation
// primitives from package segment.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sevigo/textkit/schema"
	"github.com/sevigo/textkit/segment"
	"github.com/sevigo/textkit/strutil"
)

// Analyzer computes document statistics and produces byte-budgeted chunks
// and whole-word partitions. It holds no mutable state and is safe for
// concurrent use.
type Analyzer struct {
	opts   options
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer with the given options applied on top of
// the defaults.
func NewAnalyzer(logger *slog.Logger, opts ...Option) *Analyzer {
	o := options{
		chunkBudget: defaultChunkBudget,
		splitParts:  defaultSplitParts,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		opts:   o,
		logger: logger,
	}
}

// Measure computes the statistics for a single document.
func (a *Analyzer) Measure(_ context.Context, doc schema.Document) (schema.TextStats, error) {
	text := a.prepare(doc.PageContent)

	stats := schema.TextStats{
		Bytes:      len(text),
		Chars:      utf8.RuneCountInString(text),
		Words:      segment.CountWords(text),
		Paragraphs: segment.CountParagraphs(text),
		CJKChars:   segment.CountCJK(text),
	}

	a.logger.Debug("Document measured",
		"bytes", stats.Bytes,
		"words", stats.Words,
		"paragraphs", stats.Paragraphs)

	return stats, nil
}

// ChunkDocument splits the document into chunks of at most the configured
// byte budget, each one a valid UTF-8 unit with stable byte offsets into
// the prepared text.
func (a *Analyzer) ChunkDocument(_ context.Context, doc schema.Document) ([]schema.Chunk, error) {
	if a.opts.chunkBudget <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBudget, a.opts.chunkBudget)
	}

	text := a.prepare(doc.PageContent)
	if text == "" {
		return nil, fmt.Errorf("%w: nothing to chunk", ErrEmptyDocument)
	}

	pieces := segment.SplitBytes(text, a.opts.chunkBudget)
	title := a.documentTitle(doc)

	chunks := make([]schema.Chunk, 0, len(pieces))
	offset := 0
	for i, piece := range pieces {
		chunks = append(chunks, schema.Chunk{
			ID:         strutil.NewDocumentID(),
			Index:      i,
			Content:    piece,
			StartByte:  offset,
			EndByte:    offset + len(piece),
			Identifier: fmt.Sprintf("%s - Part %d", title, i+1),
			Annotations: map[string]string{
				"chunker":      "byte_budget",
				"budget_bytes": strconv.Itoa(a.opts.chunkBudget),
			},
		})
		offset += len(piece)
	}

	a.logger.Debug("Document chunked", "chunks", len(chunks), "budget", a.opts.chunkBudget)
	return chunks, nil
}

// SplitDocument partitions the document into at most parts documents,
// splitting only at whitespace so no word is cut apart. A parts value of 0
// uses the configured default.
func (a *Analyzer) SplitDocument(_ context.Context, doc schema.Document, parts int) ([]schema.Document, error) {
	if parts == 0 {
		parts = a.opts.splitParts
	}
	if parts < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPartCount, parts)
	}

	text := a.prepare(doc.PageContent)
	pieces := segment.SplitWords(text, parts)
	if len(pieces) == 0 {
		return nil, fmt.Errorf("%w: no words to split", ErrEmptyDocument)
	}

	docs := make([]schema.Document, 0, len(pieces))
	for i, piece := range pieces {
		metadata := make(map[string]any, len(doc.Metadata)+2)
		for k, v := range doc.Metadata {
			metadata[k] = v
		}
		metadata["part"] = i + 1
		metadata["parts"] = len(pieces)

		docs = append(docs, schema.NewDocument(piece, metadata))
	}

	a.logger.Debug("Document split", "requested", parts, "produced", len(docs))
	return docs, nil
}

// prepare applies the configured redaction before any measurement.
func (a *Analyzer) prepare(text string) string {
	if a.opts.redactOpen == "" {
		return text
	}
	return segment.StripRegions(text, a.opts.redactOpen, a.opts.redactClose)
}

// documentTitle derives a human-readable name for chunk identifiers.
func (a *Analyzer) documentTitle(doc schema.Document) string {
	if name, ok := doc.Metadata["name"].(string); ok && name != "" {
		return cases.Title(language.English).String(name)
	}
	return "Document"
}
