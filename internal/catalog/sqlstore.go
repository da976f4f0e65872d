package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/austencloud/tka-studio-sub013/pkg/cap"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

var _ Store = (*SqlStore)(nil)

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .kinetic) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		// Fresh database.
		if _, err := s.db.Exec(schema1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion1); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		v = schemaVersion1
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", v); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}

	switch v {
	case schemaVersion1:
		return nil
	default:
		return fmt.Errorf("unknown schema version %d", v)
	}
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// SaveSequence implements Store.
func (s *SqlStore) SaveSequence(e *Entry) (int64, error) {
	if e == nil {
		return 0, errors.New("entry is nil")
	}
	payload, err := json.Marshal(e.Sequence)
	if err != nil {
		return 0, fmt.Errorf("marshal sequence: %w", err)
	}
	word := e.Word
	if word == "" {
		word = e.Sequence.Word
	}
	createdAt := e.CreatedAt
	if createdAt == "" {
		createdAt = nowUTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO sequences(word, cap_type, slice_size, length, created_at, payload)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		word, string(e.CAPType), string(e.SliceSize), e.Length, createdAt, payload,
	)
	if err != nil {
		return 0, fmt.Errorf("insert sequence: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	e.Word = word
	e.CreatedAt = createdAt
	return id, nil
}

// GetSequence implements Store.
func (s *SqlStore) GetSequence(id int64) (*Entry, error) {
	var e Entry
	var capType, sliceSize string
	var payload []byte
	err := s.db.QueryRow(
		`SELECT id, word, cap_type, slice_size, length, created_at, payload
		 FROM sequences WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Word, &capType, &sliceSize, &e.Length, &e.CreatedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sequence: %w", err)
	}
	e.CAPType = cap.Type(capType)
	e.SliceSize = cap.SliceSize(sliceSize)
	if err := json.Unmarshal(payload, &e.Sequence); err != nil {
		return nil, fmt.Errorf("unmarshal sequence: %w", err)
	}
	return &e, nil
}

// ListSequences implements Store.
func (s *SqlStore) ListSequences() ([]*Entry, error) {
	return s.list(
		`SELECT id, word, cap_type, slice_size, length, created_at
		 FROM sequences ORDER BY id DESC`)
}

// ListSequencesByType implements Store.
func (s *SqlStore) ListSequencesByType(capType cap.Type) ([]*Entry, error) {
	return s.list(
		`SELECT id, word, cap_type, slice_size, length, created_at
		 FROM sequences WHERE cap_type = ? ORDER BY id DESC`,
		string(capType))
}

func (s *SqlStore) list(query string, args ...any) ([]*Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()
	var list []*Entry
	for rows.Next() {
		var e Entry
		var capType, sliceSize string
		if err := rows.Scan(&e.ID, &e.Word, &capType, &sliceSize, &e.Length, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sequence: %w", err)
		}
		e.CAPType = cap.Type(capType)
		e.SliceSize = cap.SliceSize(sliceSize)
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	return list, nil
}

// DeleteSequence implements Store.
func (s *SqlStore) DeleteSequence(id int64) error {
	if _, err := s.db.Exec("DELETE FROM sequences WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete sequence: %w", err)
	}
	return nil
}
