package daat

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCursor walks a fixed, sorted slice of docIDs — enough to exercise the
// DAAT traversal logic without touching the postings package or disk.
type fakeCursor struct {
	dids   []uint64
	freq   uint64
	idx    int
	closed bool
}

func (f *fakeCursor) NextGEQ(k uint64) (uint64, bool, error) {
	for f.idx < len(f.dids) && f.dids[f.idx] < k {
		f.idx++
	}
	if f.idx >= len(f.dids) {
		return 0, false, nil
	}
	return f.dids[f.idx], true, nil
}

func (f *fakeCursor) GetFreq() uint64    { return f.freq }
func (f *fakeCursor) GetNumDid() uint64  { return uint64(len(f.dids)) }
func (f *fakeCursor) Close() error       { f.closed = true; return nil }

func countingScore(matched []Cursor, d uint64) float64 {
	return float64(len(matched))
}

func dids(results []DocScore) []uint64 {
	out := make([]uint64, len(results))
	for i, r := range results {
		out[i] = r.DID
	}
	return out
}

func TestConjunctiveIntersection(t *testing.T) {
	a := &fakeCursor{dids: []uint64{1, 2, 3, 4, 5}}
	b := &fakeCursor{dids: []uint64{2, 4, 6}}
	results, err := Conjunctive([]Cursor{a, b}, 10, countingScore)
	require.NoError(t, err)
	got := dids(results)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, []uint64{2, 4}, got)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestConjunctiveEmptyOnNoCursors(t *testing.T) {
	results, err := Conjunctive(nil, 10, countingScore)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDisjunctiveUnionNoDuplicates(t *testing.T) {
	a := &fakeCursor{dids: []uint64{1, 3}}
	b := &fakeCursor{dids: []uint64{2, 3, 5}}
	results, err := Disjunctive([]Cursor{a, b}, 10, countingScore)
	require.NoError(t, err)
	got := dids(results)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, []uint64{1, 2, 3, 5}, got)
}

func TestDisjunctiveOnlyScoresPresentCursors(t *testing.T) {
	a := &fakeCursor{dids: []uint64{1}}
	b := &fakeCursor{dids: []uint64{2}}
	var matchedCounts []int
	scorer := func(matched []Cursor, d uint64) float64 {
		matchedCounts = append(matchedCounts, len(matched))
		return 0
	}
	_, err := Disjunctive([]Cursor{a, b}, 10, scorer)
	require.NoError(t, err)
	for _, c := range matchedCounts {
		assert.Equal(t, 1, c, "each docID here is hit by exactly one cursor")
	}
}

func TestTopKBound(t *testing.T) {
	a := &fakeCursor{dids: []uint64{1, 2, 3, 4, 5}}
	scorer := func(matched []Cursor, d uint64) float64 { return float64(d) }
	results, err := Disjunctive([]Cursor{a}, 2, scorer)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint64(5), results[0].DID)
	assert.Equal(t, uint64(4), results[1].DID)
}

func TestConjunctiveClosesCursorsOnError(t *testing.T) {
	a := &fakeCursor{dids: []uint64{1, 2}}
	failing := &erroringCursor{}
	_, err := Conjunctive([]Cursor{a, failing}, 10, countingScore)
	require.Error(t, err)
	assert.True(t, a.closed)
	assert.True(t, failing.closed)
}

type erroringCursor struct{ closed bool }

func (e *erroringCursor) NextGEQ(k uint64) (uint64, bool, error) {
	return 0, false, assertErr
}
func (e *erroringCursor) GetFreq() uint64   { return 0 }
func (e *erroringCursor) GetNumDid() uint64 { return 0 }
func (e *erroringCursor) Close() error      { e.closed = true; return nil }

var assertErr = &daatTestError{}

type daatTestError struct{}

func (e *daatTestError) Error() string { return "boom" }
