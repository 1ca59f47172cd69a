package store

import (
	"fmt"
	"strings"
)

const (
	snippetWindow  = 500  // bytes of context on either side of the matched terms
	snippetMaxSize = 2000 // hard cap on the final snippet length
)

// ErrTermNotInDocument indicates a query term that matched the inverted
// index could not be located in the retrieved document body — a sign the
// index and document store have drifted out of sync.
var ErrTermNotInDocument = fmt.Errorf("store: term not found in document body")

// Snippet reproduces original_source/QueryProcessor.cpp's generateSnippet:
// lower-case the document (it was normalized at index build time), locate
// every query term, and return the window from snippetWindow bytes before
// the earliest match to snippetWindow bytes after the latest match,
// clamped to snippetMaxSize bytes, with newlines replaced by spaces.
//
// The source lower-cases the document in place before slicing it, so the
// returned snippet is itself lower-cased — kept here for parity even
// though a case-preserving variant would read more naturally.
//
// Matches the source's clamp exactly: start only moves when the earliest
// match is at or past snippetWindow; an early match under snippetWindow
// bytes in leaves start at its raw (non-zero) position rather than 0.
func Snippet(terms []string, document string) (string, error) {
	lower := strings.ToLower(document)

	var positions []int
	for _, t := range terms {
		pos := strings.Index(lower, strings.ToLower(t))
		if pos < 0 {
			return "", fmt.Errorf("%w: %q", ErrTermNotInDocument, t)
		}
		positions = append(positions, pos)
	}

	start, end := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < start {
			start = p
		}
		if p > end {
			end = p
		}
	}

	if start >= snippetWindow {
		start -= snippetWindow
	}
	end += snippetWindow
	if end > len(lower) {
		end = len(lower)
	}
	length := end - start
	if length > snippetMaxSize {
		length = snippetMaxSize
	}

	snippet := lower[start : start+length]
	return strings.ReplaceAll(snippet, "\n", " "), nil
}
