// Package registry provides a small keyed lookup table used to dispatch
// behavior by a string tag.
//
// A Map is filled once at construction time (usually in a New* function or a
// composition root) and then only read. It is not safe for concurrent writes.
package registry

import "sort"

// Map associates string keys with values of a single type V.
type Map[V any] struct {
	items map[string]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{items: map[string]V{}}
}

// Provide stores val under key, replacing any previous value, and returns the
// map for chaining.
func (m *Map[V]) Provide(key string, val V) *Map[V] {
	m.items[key] = val
	return m
}

// Get returns the value stored under key. Keys match exactly.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Keys returns the registered keys in ascending order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
