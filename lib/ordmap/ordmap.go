// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package ordmap

// Entry is one key/value pair of a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map from K to V. The zero value is not
// usable; construct with New.
type Map[K comparable, V any] struct {
	index   map[K]int
	entries []Entry[K, V]
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Set inserts key with value, or overwrites the value of an existing
// key. An overwritten key keeps its original position.
func (m *Map[K, V]) Set(key K, value V) {
	if position, exists := m.index[key]; exists {
		m.entries[position].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

// Get returns the value stored for key, and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if position, exists := m.index[key]; exists {
		return m.entries[position].Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, exists := m.index[key]
	return exists
}

// Delete removes key and reports whether it was present. Later entries
// shift down, preserving their relative order.
func (m *Map[K, V]) Delete(key K) bool {
	position, exists := m.index[key]
	if !exists {
		return false
	}
	delete(m.index, key)
	m.entries = append(m.entries[:position], m.entries[position+1:]...)
	for i := position; i < len(m.entries); i++ {
		m.index[m.entries[i].Key] = i
	}
	return true
}

// Entries returns the entries in insertion order. The returned slice is
// a copy; mutating it does not affect the map.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], len(m.entries))
	copy(entries, m.entries)
	return entries
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, entry := range m.entries {
		keys[i] = entry.Key
	}
	return keys
}
