package query

import (
	"errors"
	"fmt"

	"github.com/hieudo/queryproc/internal/daat"
	"github.com/hieudo/queryproc/internal/postings"
	"github.com/hieudo/queryproc/internal/scoring"
	"github.com/hieudo/queryproc/internal/store"
)

// Result is one ranked, snippeted record the dispatcher emits, ready for
// presentation by the CLI.
type Result struct {
	Rank    int
	URL     string
	Score   float64
	Snippet string
}

// DocumentStore is the subset of store.DocumentStore the dispatcher needs,
// kept as an interface so tests can swap in a fake in-memory store instead
// of opening sqlite.
type DocumentStore interface {
	Get(did uint64) (string, error)
}

// Dispatcher wires the collaborator adapters (C6) to the DAAT engine (C4)
// and BM25 scorer (C3), implementing C5's parse/execute contract. It holds
// no ownership over the collaborators' backing resources beyond the
// duration of a query, per spec.md §4.6.
type Dispatcher struct {
	Lexicon  *store.Lexicon
	URLTable *store.URLTable
	Index    postings.Source
	Docs     DocumentStore
	Snippet  func(terms []string, doc string) (string, error)

	TopK   int
	Params scoring.Params

	// AndMarker and OrMarker are the boolean connective markers Parse
	// splits queries on, externalized via internal/config (SPEC_FULL.md
	// §4.8). Zero-valued fields fall back to " and " / " or ".
	AndMarker string
	OrMarker  string
}

// Execute parses query, opens one cursor per lexicon hit, drives the
// appropriate DAAT traversal, and returns ranked, snippeted results in
// descending-score order. An empty query returns no results and no error,
// matching the source's early return on an empty query string.
func (d *Dispatcher) Execute(query string) ([]Result, error) {
	if query == "" {
		return nil, nil
	}

	andMarker, orMarker := d.AndMarker, d.OrMarker
	if andMarker == "" {
		andMarker = DefaultAndMarker
	}
	if orMarker == "" {
		orMarker = DefaultOrMarker
	}
	connective, rawTerms, err := Parse(query, andMarker, orMarker)
	if err != nil {
		return nil, err
	}

	cursors, terms, err := d.openCursors(connective, rawTerms)
	if err != nil {
		return nil, err
	}
	if len(cursors) == 0 {
		return nil, nil
	}

	scoreFn := d.scoreFunc()

	var ranked []daat.DocScore
	switch connective {
	case Conjunctive:
		ranked, err = daat.Conjunctive(cursors, d.TopK, scoreFn)
	case Disjunctive:
		ranked, err = daat.Disjunctive(cursors, d.TopK, scoreFn)
	}
	if err != nil {
		return nil, err
	}

	return d.buildResults(ranked, terms)
}

// openCursors opens one postings cursor per term present in the lexicon.
// Under AND, any missing term short-circuits to an empty cursor set
// (ErrMissingTerm is swallowed, not surfaced — spec.md §7). Under OR,
// missing terms are silently excluded and the union proceeds over the
// remainder.
func (d *Dispatcher) openCursors(connective Connective, rawTerms []string) ([]daat.Cursor, []string, error) {
	var cursors []daat.Cursor
	var terms []string
	for _, t := range rawTerms {
		entry, err := d.Lexicon.Lookup(t)
		if errors.Is(err, store.ErrMissingTerm) {
			if connective == Conjunctive {
				closeAll(cursors)
				return nil, nil, nil
			}
			continue
		}
		if err != nil {
			closeAll(cursors)
			return nil, nil, err
		}
		c, err := postings.Open(d.Index, entry.InvListPos, entry.MetadataSize)
		if err != nil {
			closeAll(cursors)
			return nil, nil, err
		}
		cursors = append(cursors, c)
		terms = append(terms, t)
	}
	return cursors, terms, nil
}

func closeAll(cursors []daat.Cursor) {
	for _, c := range cursors {
		_ = c.Close()
	}
}

func (d *Dispatcher) scoreFunc() daat.ScoreFunc {
	n := d.URLTable.Size()
	avg := d.URLTable.AverageDocumentLength()
	return func(matched []daat.Cursor, did uint64) float64 {
		entry, _ := d.URLTable.Get(did)
		stats := make([]scoring.TermStat, 0, len(matched))
		for _, c := range matched {
			stats = append(stats, scoring.TermStat{
				TermFreq:  c.GetFreq(),
				DocFreq:   c.GetNumDid(),
				CollCount: n,
				DocLen:    float64(entry.DocumentLen),
				AvgDocLen: avg,
			})
		}
		return scoring.Score(d.Params, stats)
	}
}

func (d *Dispatcher) buildResults(ranked []daat.DocScore, terms []string) ([]Result, error) {
	results := make([]Result, 0, len(ranked))
	for i, r := range ranked {
		entry, ok := d.URLTable.Get(r.DID)
		if !ok {
			return nil, fmt.Errorf("query: docID %d out of range of url table", r.DID)
		}
		snippet := ""
		if d.Docs != nil {
			body, err := d.Docs.Get(r.DID)
			if err != nil {
				return nil, err
			}
			if body != "" {
				snippet, err = d.Snippet(terms, body)
				if err != nil {
					return nil, err
				}
			}
		}
		results = append(results, Result{
			Rank:    i + 1,
			URL:     entry.URL,
			Score:   r.Score,
			Snippet: snippet,
		})
	}
	return results, nil
}
