package store

import "errors"

// ErrIO wraps an open/read failure on the URL table, lexicon, index, or
// document-store backend.
var ErrIO = errors.New("store: io error")

// ErrMissingTerm reports a lexicon miss for a queried term. Per spec this
// is not an error condition — callers branch on it as ordinary control
// flow rather than surfacing a diagnostic.
var ErrMissingTerm = errors.New("store: term not found in lexicon")
