package stats

import "errors"

// Defaults for the analyzer configuration.
const (
	defaultChunkBudget = 1024
	defaultSplitParts  = 4
)

var (
	ErrInvalidBudget    = errors.New("invalid chunk budget")
	ErrInvalidPartCount = errors.New("invalid part count")
	ErrEmptyDocument    = errors.New("document is empty")
)

// options holds configuration settings for the analyzer.
type options struct {
	chunkBudget int
	splitParts  int
	redactOpen  string
	redactClose string
}

// Option is a function type for configuring the analyzer.
type Option func(*options)

// WithChunkBudget sets the byte budget used by ChunkDocument.
func WithChunkBudget(budget int) Option {
	return func(o *options) {
		if budget > 0 {
			o.chunkBudget = budget
		}
	}
}

// WithSplitParts sets the default number of parts for SplitDocument.
func WithSplitParts(parts int) Option {
	return func(o *options) {
		if parts > 0 {
			o.splitParts = parts
		}
	}
}

// WithRedaction configures a marker pair whose delimited regions are
// removed before a document is measured, chunked or split.
func WithRedaction(openMarker, closeMarker string) Option {
	return func(o *options) {
		if openMarker != "" {
			o.redactOpen = openMarker
			o.redactClose = closeMarker
		}
	}
}
