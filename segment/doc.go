// Package segment provides UTF-8 safe text measurement and segmentation
// primitives: word and paragraph counting with document-editor heuristics,
// byte-budgeted chunking, whole-word N-way splitting, and removal of tagged
// regions. All functions are pure, operate on complete in-memory strings,
// and never produce a slice boundary inside a multi-byte encoding.
package segment
