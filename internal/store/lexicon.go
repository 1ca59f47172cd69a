package store

import (
	"bufio"
	"fmt"
	"io"
)

// LexiconEntry is a term's position and metadata-block size within the
// index file.
type LexiconEntry struct {
	InvListPos   int64
	MetadataSize int64
}

// Lexicon is the read-only, load-once term -> (invListPos, metadataSize)
// map C6 exposes to the dispatcher.
type Lexicon struct {
	entries map[string]LexiconEntry
}

// LoadLexicon reads a plain-text, whitespace-separated "term invListPos
// metadataSize" file, one record per line (spec.md §6).
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	scanner := bufio.NewScanner(r)
	entries := make(map[string]LexiconEntry)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		var term string
		var pos, size int64
		if _, err := fmt.Sscanf(line, "%s %d %d", &term, &pos, &size); err != nil {
			return nil, fmt.Errorf("%w: lexicon line %d: %s", ErrIO, lineNo, err)
		}
		entries[term] = LexiconEntry{InvListPos: pos, MetadataSize: size}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	return &Lexicon{entries: entries}, nil
}

// Lookup returns the lexicon entry for term, or ErrMissingTerm.
func (l *Lexicon) Lookup(term string) (LexiconEntry, error) {
	e, ok := l.entries[term]
	if !ok {
		return LexiconEntry{}, ErrMissingTerm
	}
	return e, nil
}

// Len reports the number of distinct terms loaded.
func (l *Lexicon) Len() int { return len(l.entries) }
