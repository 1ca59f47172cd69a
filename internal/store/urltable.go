package store

import (
	"bufio"
	"fmt"
	"io"
)

// URLEntry is one record of the URL table: the page URL and its document
// length in bytes, indexed implicitly by docID.
type URLEntry struct {
	URL         string
	DocumentLen uint64
}

// URLTable is the read-only, load-once-at-startup collaborator C6 depends
// on for document length and collection-average statistics.
type URLTable struct {
	entries []URLEntry
	avgLen  float64
}

// LoadURLTable reads a plain-text, whitespace-separated "docID url
// documentLen" file, one record per line, ordered by ascending docID
// starting at 0 (spec.md §6). Lines are parsed with bufio.Scanner, matching
// the teacher's own line-oriented parsing (cmd/du.go).
func LoadURLTable(r io.Reader) (*URLTable, error) {
	scanner := bufio.NewScanner(r)
	// Documents can be large; grow the scan buffer past bufio's default
	// 64KiB line limit.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	var entries []URLEntry
	var total float64
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		var did uint64
		var url string
		var docLen uint64
		if _, err := fmt.Sscanf(line, "%d %s %d", &did, &url, &docLen); err != nil {
			return nil, fmt.Errorf("%w: urlTable line %d: %s", ErrIO, lineNo, err)
		}
		entries = append(entries, URLEntry{URL: url, DocumentLen: docLen})
		total += float64(docLen)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}

	t := &URLTable{entries: entries}
	if len(entries) > 0 {
		t.avgLen = total / float64(len(entries))
	}
	return t, nil
}

// Size returns N, the collection size.
func (t *URLTable) Size() uint64 { return uint64(len(t.entries)) }

// Get returns the URL and document length for did.
func (t *URLTable) Get(did uint64) (URLEntry, bool) {
	if did >= uint64(len(t.entries)) {
		return URLEntry{}, false
	}
	return t.entries[did], true
}

// AverageDocumentLength returns D_AVG, the mean document length across the
// corpus, computed once at load.
func (t *URLTable) AverageDocumentLength() float64 { return t.avgLen }
