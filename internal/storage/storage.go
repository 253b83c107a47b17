// Package storage exposes the persisted key/value preferences the bootstrap
// reads from. The bootstrap never writes; stores are read-only from here.
package storage

import (
	"sync"
)

// Keys written by the application and read back at bootstrap.
const (
	KeyThemePreferences = "adaptive_theme_preferences"
	KeyLocale           = "flutter.feur_saved_locale"
)

// Store is a string-valued key/value store.
type Store interface {
	// Get returns the raw stored string and whether the key exists.
	Get(key string) (string, bool)
}

// Memory is an in-process Store. It counts reads per key so callers can
// check that a bootstrap touched each key once.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	reads  map[string]int
}

// NewMemory creates a Memory store seeded with values.
func NewMemory(values map[string]string) *Memory {
	m := &Memory{
		values: make(map[string]string, len(values)),
		reads:  make(map[string]int),
	}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads[key]++
	v, ok := m.values[key]
	return v, ok
}

// Reads returns how many times key was read.
func (m *Memory) Reads(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[key]
}

// Empty is a Store with no keys.
var Empty Store = emptyStore{}

type emptyStore struct{}

func (emptyStore) Get(string) (string, bool) { return "", false }
