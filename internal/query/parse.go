// Package query implements the dispatcher (C5): parsing the boolean
// connective out of a raw query string, opening a cursor per lexicon hit,
// driving the DAAT engine, and assembling ranked, snippeted results.
package query

import (
	"errors"
	"strings"
)

// Connective is the boolean operator joining a query's terms.
type Connective int

const (
	Conjunctive Connective = iota // AND — also the default for a single bare term
	Disjunctive                   // OR
)

// Default markers, used whenever a caller's configured marker is empty.
const (
	DefaultAndMarker = " and "
	DefaultOrMarker  = " or "
)

// ErrMixedConnective is returned when a query textually contains both
// boolean markers. spec.md §9 flags this as an open question (the source
// takes whichever marker is found first, "and" before "or", on queries
// like "a and b or c" — almost certainly not the user's intent); this
// implementation resolves it by rejecting the query outright rather than
// silently picking a side.
var ErrMixedConnective = errors.New("query: mixed 'and'/'or' connectives are not supported")

// Parse classifies query by the presence of andMarker or orMarker and
// splits it into terms on the literal marker. Both markers are externalized
// via internal/config (SPEC_FULL.md §4.8), defaulting to " and " / " or "
// when left unconfigured. Splitting is purely textual; whitespace adjacent
// to the marker beyond the marker itself is not trimmed, and empty terms
// are passed through unchanged (they will simply miss the lexicon
// downstream). A query containing neither marker is treated as a single
// conjunctive term.
func Parse(q string, andMarker, orMarker string) (Connective, []string, error) {
	hasAnd := strings.Contains(q, andMarker)
	hasOr := strings.Contains(q, orMarker)

	switch {
	case hasAnd && hasOr:
		return Conjunctive, nil, ErrMixedConnective
	case hasAnd:
		return Conjunctive, strings.Split(q, andMarker), nil
	case hasOr:
		return Disjunctive, strings.Split(q, orMarker), nil
	default:
		return Conjunctive, []string{q}, nil
	}
}
