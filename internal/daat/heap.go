package daat

// DocScore pairs a BM25 score with the docID it was computed for.
type DocScore struct {
	Score float64
	DID   uint64
}

// scoreHeap is a bounded max-K container/heap ordered so the *weakest*
// survivor (lowest score) sits at the root — pushing past K entries pops
// that root, which keeps the K highest-scoring results seen so far.
// Grounded on the teacher's rangeIndexHeap (range_index_heap.go), which
// follows the same container/heap.Interface shape over a different key.
type scoreHeap []DocScore

func (h scoreHeap) Len() int            { return len(h) }
func (h scoreHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h scoreHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoreHeap) Push(x interface{}) { *h = append(*h, x.(DocScore)) }
func (h *scoreHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
