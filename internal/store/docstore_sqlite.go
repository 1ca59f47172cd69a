// Package store's sqlite document-store adapter supplements spec.md's
// opaque DocumentStore.open("sqlite") collaborator with a concrete
// implementation, grounded on the sibling go/ros package's own use of
// database/sql with the "sqlite3" driver (see ros2db3_to_mcap_test.go's
// sql.Open("sqlite3", db3file)).
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DocumentStore is the opaque string-in/string-out collaborator C6
// requires: Open(kind), Get(did), Close(). Only the "sqlite" kind is
// implemented; any other kind is rejected at Open time.
type DocumentStore struct {
	db *sql.DB
}

// OpenDocumentStore opens a document store of the given kind against the
// sqlite database at path. The source calls DocumentStore("sqlite") with
// an implicit, hard-coded path; this port takes the path explicitly so it
// can be wired from the CLI's --doc-store-path flag instead.
func OpenDocumentStore(kind, path string) (*DocumentStore, error) {
	if kind != "sqlite" {
		return nil, fmt.Errorf("store: unsupported document store kind %q", kind)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening document store: %s", ErrIO, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: pinging document store: %s", ErrIO, err)
	}
	return &DocumentStore{db: db}, nil
}

// Get returns the stored document body for did, or an empty string if no
// row exists — matching the source's behavior of silently skipping snippet
// generation for a missing document rather than treating it as an error.
func (d *DocumentStore) Get(did uint64) (string, error) {
	var body string
	err := d.db.QueryRow(`SELECT body FROM documents WHERE did = ?`, did).Scan(&body)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: fetching document %d: %s", ErrIO, did, err)
	}
	return body, nil
}

// Close releases the backing database handle.
func (d *DocumentStore) Close() error {
	return d.db.Close()
}
