// Package scoring implements the BM25 ranking function used to score a
// matched document against the set of query terms that hit it. It is a
// pure function of per-term frequency and list statistics — no I/O, no
// shared state.
package scoring

import "math"

// DefaultK1 and DefaultB are the classic Okapi BM25 tuning constants; the source
// hard-codes these, and this implementation keeps them as compile-time
// defaults overridable via internal/config.
const (
	DefaultK1 = 1.2
	DefaultB  = 0.75
)

// TermStat carries the per-term inputs to one BM25 contribution: the
// frequency of the term in the matched document (tf) and the term's
// document frequency proxy (fT), i.e. Cursor.GetFreq() and
// Cursor.GetNumDid() for the cursor that matched.
type TermStat struct {
	TermFreq  uint64
	DocFreq   uint64 // f_t
	CollCount uint64 // N
	DocLen    float64
	AvgDocLen float64
}

// Params bundles the tunable BM25 constants so callers don't have to thread
// k1/b through every call site.
type Params struct {
	K1 float64
	B  float64
}

// DefaultParams returns the source's hard-coded constants.
func DefaultParams() Params {
	return Params{K1: DefaultK1, B: DefaultB}
}

// IDF computes log((N - f_t + 0.5) / (f_t + 0.5)). It may be negative when
// f_t exceeds N/2 — permitted per spec, since only monotonicity in tf is
// required downstream, not IDF non-negativity.
func IDF(n, fT uint64) float64 {
	numer := float64(n) - float64(fT) + 0.5
	denom := float64(fT) + 0.5
	return math.Log(numer / denom)
}

// TF computes the length-normalised term-frequency component of BM25 for a
// single term against a single document.
func TF(p Params, tf uint64, docLen, avgDocLen float64) float64 {
	k := p.K1 * ((1 - p.B) + p.B*docLen/avgDocLen)
	return (p.K1 + 1) * float64(tf) / (k + float64(tf))
}

// Score sums IDF(t)*TF(t,d) across every term statistic supplied — the
// per-document BM25 score.
func Score(p Params, stats []TermStat) float64 {
	var total float64
	for _, s := range stats {
		total += IDF(s.CollCount, s.DocFreq) * TF(p, s.TermFreq, s.DocLen, s.AvgDocLen)
	}
	return total
}
