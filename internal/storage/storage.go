// Package storage is the persisted key-value store behind toolbox preferences.
//
// Only two keys are in use (KeyTheme and KeyFavorites). Values are opaque
// strings; callers own their encoding. Every Set is a full, synchronous write
// so a crash or restart never observes a half-applied mutation.
package storage

import (
	"fmt"
	"maps"
	"sync"
)

const (
	KeyTheme     = "toolbox-theme"
	KeyFavorites = "toolbox-favs"
)

// Store reads and writes string values by key. A missing key is reported with
// ok == false and a nil error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// StorageError wraps every failure coming out of a Store.
type StorageError struct {
	Op  string // "read" or "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// MemoryStore keeps values in a map. Setting FailWrites makes every Set fail
// with that error, leaving stored values untouched.
type MemoryStore struct {
	mu         sync.Mutex
	values     map[string]string
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return &StorageError{Op: "write", Key: key, Err: m.FailWrites}
	}
	m.values[key] = value
	return nil
}

// Snapshot returns a copy of everything stored.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.values)
}
