// Package daat drives a set of posting-list cursors in lock-step
// (document-at-a-time) to enumerate matching docIDs under conjunctive or
// disjunctive boolean semantics, scoring each hit and retaining the top-K
// results in a bounded heap.
package daat

import (
	"container/heap"
)

// Cursor is the subset of postings.Cursor the DAAT engine depends on. Kept
// as a local interface (rather than importing the concrete type) so tests
// can drive the engine against hand-built in-memory lists without touching
// disk, matching the teacher's habit of depending on io.ReadSeeker rather
// than *os.File throughout libmcap.
type Cursor interface {
	NextGEQ(k uint64) (uint64, bool, error)
	GetFreq() uint64
	GetNumDid() uint64
	Close() error
}

// ScoreFunc computes the BM25 score for docID d given the cursors currently
// positioned there. For conjunctive traversal every cursor is positioned at
// d; for disjunctive traversal callers should only pass the subset of
// cursors whose current NextGEQ result equals d (see Disjunctive below) —
// the source passes every cursor unconditionally here, which reads stale
// frequencies from list members not actually present at d; this
// implementation does not reproduce that bug.
type ScoreFunc func(matched []Cursor, d uint64) float64

// closeAll closes every cursor, collecting the first error encountered but
// continuing so that no handle in the set is leaked on a partial failure.
func closeAll(cursors []Cursor) error {
	var first error
	for _, c := range cursors {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// pushBounded pushes (score, d) onto h and pops the weakest survivor while
// the heap exceeds topK entries.
func pushBounded(h *scoreHeap, topK int, score float64, d uint64) {
	heap.Push(h, DocScore{Score: score, DID: d})
	for h.Len() > topK {
		heap.Pop(h)
	}
}

// drain empties h in ascending-score order, then reverses so the result is
// descending by score (highest first) — the order the dispatcher presents
// to the user.
func drain(h *scoreHeap) []DocScore {
	out := make([]DocScore, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(DocScore)
	}
	return out
}

// Conjunctive returns exactly the docIDs present in every cursor's list,
// in descending-score order, bounded to the topK highest scores. Cursors
// are consulted in input order (the "leapfrog" primary is cursors[0]);
// callers MAY presort cursors by ascending list length as a performance
// optimization without changing the emitted set.
//
// Every cursor is closed on every return path, including on error.
func Conjunctive(cursors []Cursor, topK int, score ScoreFunc) ([]DocScore, error) {
	defer closeAll(cursors)

	if len(cursors) == 0 {
		return nil, nil
	}

	var h scoreHeap
	did := uint64(0)
	for {
		candidate, ok, err := cursors[0].NextGEQ(did)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		did = candidate

		matched := true
		floor := did
		for i := 1; i < len(cursors); i++ {
			d, ok, err := cursors[i].NextGEQ(did)
			if err != nil {
				return nil, err
			}
			if !ok {
				return drain(&h), nil
			}
			if d != did {
				matched = false
				if d > floor {
					floor = d
				}
				break
			}
		}

		if matched {
			pushBounded(&h, topK, score(cursors, did), did)
			did++
		} else {
			did = floor // leapfrog: advance floor past the mismatching cursor
		}
	}
	return drain(&h), nil
}

// Disjunctive returns every docID present in at least one cursor's list,
// exactly once, in descending-score order, bounded to the topK highest
// scores. A cursor whose current NextGEQ result is greater than the
// emitted docID contributes nothing to that docID's score — per spec,
// unlike the source, which scores every cursor unconditionally regardless
// of whether it is actually positioned at the emitted docID.
//
// Every cursor is closed on every return path, including on error.
func Disjunctive(cursors []Cursor, topK int, score ScoreFunc) ([]DocScore, error) {
	defer closeAll(cursors)

	if len(cursors) == 0 {
		return nil, nil
	}

	var h scoreHeap
	did := uint64(0)
	for {
		candidates := make([]uint64, len(cursors))
		present := make([]bool, len(cursors))
		anyPresent := false
		min := uint64(0)
		for i, c := range cursors {
			d, ok, err := c.NextGEQ(did)
			if err != nil {
				return nil, err
			}
			candidates[i] = d
			present[i] = ok
			if ok && (!anyPresent || d < min) {
				min = d
				anyPresent = true
			}
		}
		if !anyPresent {
			break
		}
		did = min

		var matched []Cursor
		for i, c := range cursors {
			if present[i] && candidates[i] == did {
				matched = append(matched, c)
			}
		}

		pushBounded(&h, topK, score(matched, did), did)
		did++
	}
	return drain(&h), nil
}
