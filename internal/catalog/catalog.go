// Package catalog persists generated sequences. The CLI and the tool
// server use only the Store interface; the implementation is SQLite or
// in-memory.
package catalog

import "github.com/austencloud/tka-studio-sub013/pkg/cap"

// DefaultDBPath is the default relative path for the catalog DB.
// Resolve against cwd; Open() creates the parent dir (e.g. .kinetic).
const DefaultDBPath = ".kinetic/catalog.db"

// Entry is one stored sequence together with the settings that produced
// it. ID 0 means not yet saved.
type Entry struct {
	ID        int64
	Word      string
	CAPType   cap.Type
	SliceSize cap.SliceSize
	Length    int    // motion beats in the seed
	CreatedAt string // RFC 3339 UTC, set on save
	Sequence  cap.Sequence
}

// Store is the persistence facade for the sequence catalog.
type Store interface {
	// SaveSequence inserts an entry and returns its id. Word and
	// CreatedAt are filled from the sequence and the clock when empty.
	SaveSequence(e *Entry) (int64, error)
	// GetSequence returns the entry by id, or nil if not found.
	GetSequence(id int64) (*Entry, error)
	// ListSequences returns all entries, newest first, without payloads.
	ListSequences() ([]*Entry, error)
	// ListSequencesByType returns the entries for one pattern, newest
	// first, without payloads.
	ListSequencesByType(capType cap.Type) ([]*Entry, error)
	// DeleteSequence removes the entry by id. Deleting a missing id is
	// not an error.
	DeleteSequence(id int64) error
	// Close releases the store's resources.
	Close() error
}
