package catalog

import (
	"errors"
	"sort"
	"sync"

	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// MemStore is an in-memory Store for tests and one-shot runs.
type MemStore struct {
	mu      sync.Mutex
	entries map[int64]*Entry
	nextID  int64
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns a new in-memory Store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[int64]*Entry), nextID: 1}
}

// SaveSequence implements Store.
func (s *MemStore) SaveSequence(e *Entry) (int64, error) {
	if e == nil {
		return 0, errors.New("entry is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Word == "" {
		e.Word = e.Sequence.Word
	}
	if e.CreatedAt == "" {
		e.CreatedAt = nowUTC()
	}
	e.ID = s.nextID
	s.nextID++
	cp := *e
	cp.Sequence = e.Sequence.Clone()
	s.entries[e.ID] = &cp
	return e.ID, nil
}

// GetSequence implements Store.
func (s *MemStore) GetSequence(id int64) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	cp.Sequence = e.Sequence.Clone()
	return &cp, nil
}

// ListSequences implements Store.
func (s *MemStore) ListSequences() ([]*Entry, error) {
	return s.listWhere(func(*Entry) bool { return true })
}

// ListSequencesByType implements Store.
func (s *MemStore) ListSequencesByType(capType cap.Type) ([]*Entry, error) {
	return s.listWhere(func(e *Entry) bool { return e.CAPType == capType })
}

func (s *MemStore) listWhere(keep func(*Entry) bool) ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !keep(e) {
			continue
		}
		cp := *e
		cp.Sequence = cap.Sequence{} // list views skip the payload
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// DeleteSequence implements Store.
func (s *MemStore) DeleteSequence(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }
