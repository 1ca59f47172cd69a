package store

import (
	"fmt"
	"os"
)

// IndexFile is the random-access byte source backing every posting-list
// cursor opened during a query. A single handle is shared across every
// cursor in a traversal (spec.md §5 explicitly allows this, since ReadAt
// carries its own offset and the engine is single-threaded).
type IndexFile struct {
	f *os.File
}

// OpenIndexFile opens path for random-access reads.
func OpenIndexFile(path string) (*IndexFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening index file: %s", ErrIO, err)
	}
	return &IndexFile{f: f}, nil
}

// ReadAt satisfies postings.Source.
func (i *IndexFile) ReadAt(p []byte, off int64) (int, error) {
	return i.f.ReadAt(p, off)
}

// Close releases the underlying file handle.
func (i *IndexFile) Close() error {
	return i.f.Close()
}
