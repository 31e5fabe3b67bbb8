// Package store provides the persisted key/value layer behind the planner's
// collections. Each key holds one serialized value; reads fall back to the
// caller's default and writes overwrite the whole entry. Storage failures
// are logged and recovered locally, never surfaced to callers.
package store

import (
	"encoding/json"
	"log"
	"sync"
)

// SchemaVersion tags the stored data format. There is no migration
// machinery; a mismatch is logged and the affected values fall back to
// their defaults like any other unreadable entry.
const SchemaVersion = 1

const versionKey = "schemaVersion"

// Backend is the durable medium behind a Store. Load reports found=false
// for keys that have never been written.
type Backend interface {
	Load(key string) (value []byte, found bool, err error)
	Save(key string, value []byte) error
	Close() error
}

// Store caches each key's serialized value in memory, so repeated reads in
// one session stay consistent even if the backend is cleared externally
// between writes. Last write wins.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	cache   map[string][]byte
}

// New wraps backend and stamps the schema version.
func New(backend Backend) *Store {
	s := &Store{
		backend: backend,
		cache:   make(map[string][]byte),
	}
	s.checkVersion()
	return s
}

func (s *Store) checkVersion() {
	version := 0
	if s.Read(versionKey, &version) {
		if version != SchemaVersion {
			log.Printf("Warning: stored data has schema version %d, expected %d", version, SchemaVersion)
		}
		return
	}
	s.Write(versionKey, SchemaVersion)
}

// Read loads the value stored under key into out. The caller passes its
// default value in out: when the key is absent, the stored value is
// malformed or the backend is unavailable, out is left untouched, a
// warning is logged for the failure cases and Read returns false.
func (s *Store) Read(key string, out interface{}) bool {
	s.mu.RLock()
	raw, cached := s.cache[key]
	s.mu.RUnlock()

	if !cached {
		value, found, err := s.backend.Load(key)
		if err != nil {
			log.Printf("Warning: failed to load %q from storage, using default: %v", key, err)
			return false
		}
		if !found {
			return false
		}
		raw = value
		s.mu.Lock()
		s.cache[key] = raw
		s.mu.Unlock()
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("Warning: stored value for %q is malformed, using default: %v", key, err)
		return false
	}
	return true
}

// Write serializes v and overwrites the entry for key, caching it first so
// the value is readable this session even if persisting fails.
func (s *Store) Write(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: failed to serialize value for %q: %v", key, err)
		return
	}

	s.mu.Lock()
	s.cache[key] = raw
	s.mu.Unlock()

	if err := s.backend.Save(key, raw); err != nil {
		log.Printf("Warning: failed to persist %q: %v", key, err)
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
