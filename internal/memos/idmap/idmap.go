// Package idmap derives numeric memo ids from server resource names and
// remembers the reverse mapping for as long as the Mapper lives.
//
// Ids are a 32-bit string hash, so two names can collide. Collisions are not
// resolved: the last name recorded for an id wins.
package idmap

import (
	"strings"
	"sync"
	"unicode/utf16"
)

// Mapper is a bidirectional numeric id <-> native name table.
// Create one per sync session and share it between the clients of that session.
type Mapper struct {
	mu    sync.RWMutex
	names map[int64]string
}

// New creates an empty Mapper.
func New() *Mapper {
	return &Mapper{names: make(map[int64]string)}
}

// ToNumericID hashes the trailing path segment of nativeName and records the mapping.
func (m *Mapper) ToNumericID(nativeName string) int64 {
	id := Hash(lastSegment(nativeName))
	m.Remember(id, nativeName)
	return id
}

// Remember records id -> nativeName without hashing. Used by servers that already expose numeric ids.
func (m *Mapper) Remember(id int64, nativeName string) {
	m.mu.Lock()
	m.names[id] = nativeName
	m.mu.Unlock()
}

// ToNativeName returns the native name recorded for id.
func (m *Mapper) ToNativeName(id int64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name, ok := m.names[id]
	return name, ok
}

// Len returns the number of ids recorded.
func (m *Mapper) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.names)
}

// Hash folds the UTF-16 code units of s into a signed 32-bit accumulator
// (hash*31 + c, wrapping) and returns its absolute value.
func Hash(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// LastSegment returns the part of name after the final "/".
func LastSegment(name string) string {
	return lastSegment(name)
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
