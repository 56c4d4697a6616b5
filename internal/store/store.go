// Package store is a gob-over-sqlite key-value store used as the game
// session backend when no postgres database is configured.
package store

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	mu   sync.Mutex
	name string
	db   *sql.DB
}

var (
	ErrBadName  = fmt.Errorf("bad name for store")
	ErrNotFound = fmt.Errorf("value not found")
)

func isLetters(s string) bool {
	for _, c := range s {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return len(s) > 0
}

// New creates a [Store] over an existing sqlite handle. name becomes the
// backing table and may only contain Latin letters.
func New(db *sql.DB, name string) (*Store, error) {
	if !isLetters(name) {
		return nil, ErrBadName
	}
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ` + name + ` (
	key		TEXT PRIMARY KEY,
	value	BLOB
);`)
	if err != nil {
		return nil, err
	}
	return &Store{name: name, db: db}, nil
}

// Open connects to (or creates) a sqlite database file and prepares a store
// table in it.
func Open(path, name string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return New(db, name)
}

// Get retrieves a value from the store. value must be a pointer or nil. If
// key is not present, [ErrNotFound] is returned. If value is nil, data read
// from the store is silently discarded.
func (s *Store) Get(key string, value any) error {
	var v []uint8
	if err := s.db.QueryRow(
		`SELECT value FROM `+s.name+` WHERE key = ?;`,
		key).Scan(&v); err == sql.ErrNoRows {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	dec := gob.NewDecoder(bytes.NewReader(v))
	return dec.Decode(value)
}

// Set inserts a new key-value pair or updates an existing one.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return err
	}
	_, err := s.db.Exec(`
INSERT INTO `+s.name+` (key, value)
VALUES(?, ?)
ON CONFLICT(key)
DO UPDATE SET value=excluded.value;`,
		key, buf.Bytes())
	return err
}

// Delete removes key from the store without checking if it existed.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM `+s.name+` WHERE key = ?;`, key)
	return err
}

func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT count(*) FROM ` + s.name + `;`).Scan(&count)
	return count, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
