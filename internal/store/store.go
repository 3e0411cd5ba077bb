// Package store persists measurement records as a single JSON array under
// one key of a key-value backend.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"LocalMeasure/internal/store/kv"
)

// DefaultKey is the well-known key the record array lives under.
const DefaultKey = "measurement-records"

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("record not found")

// Store reads and writes the record log.
type Store struct {
	backend kv.KV
	key     string
	mu      sync.Mutex
}

// New creates a store over backend. An empty key uses DefaultKey.
func New(backend kv.KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{backend: backend, key: key}
}

// List returns every record in insertion order. Missing or malformed data
// reads as an empty list.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the record with id.
func (s *Store) Get(id string) (Record, error) {
	for _, r := range s.List() {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Save appends a record to the log.
func (s *Store) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := append(s.load(), r)
	if err := s.write(records); err != nil {
		return err
	}
	log.Printf("[STORE] Saved record %s (%d total)", r.ID, len(records))
	return nil
}

// Delete removes the record with id. Unknown ids are ignored.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	if err := s.write(kept); err != nil {
		return err
	}
	log.Printf("[STORE] Deleted record %s", id)
	return nil
}

// ClearAll removes the key entirely.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(s.key); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	log.Println("[STORE] Cleared all records")
	return nil
}

func (s *Store) load() []Record {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		log.Printf("[STORE] Error reading %q: %v", s.key, err)
		return []Record{}
	}
	if !ok || raw == "" {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("[STORE] Ignoring malformed data under %q: %v", s.key, err)
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

func (s *Store) write(records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.backend.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}
