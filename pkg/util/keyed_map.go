package util

import (
	"cmp"
	"slices"
	"sync"
)

// KeyedMap is a concurrent map whose listings come back in key order
type KeyedMap[K cmp.Ordered, V any] struct {
	m sync.Map
}

func NewKeyedMap[K cmp.Ordered, V any]() *KeyedMap[K, V] {
	return &KeyedMap[K, V]{}
}

func (m *KeyedMap[K, V]) Load(key K) (V, bool) {
	v, ok := m.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// LoadOrStore keeps the first value stored for key; loaded reports whether value was discarded
func (m *KeyedMap[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := m.m.LoadOrStore(key, value)
	return v.(V), loaded
}

func (m *KeyedMap[K, V]) LoadAndDelete(key K) (V, bool) {
	v, ok := m.m.LoadAndDelete(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Range visits entries in no particular order until f returns false
func (m *KeyedMap[K, V]) Range(f func(key K, value V) bool) {
	m.m.Range(func(k, v any) bool {
		return f(k.(K), v.(V))
	})
}

func (m *KeyedMap[K, V]) SortedKeys() []K {
	var keys []K
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	slices.Sort(keys)
	return keys
}

// SortedValues returns the values ordered by their keys. Entries deleted
// while listing are skipped.
func (m *KeyedMap[K, V]) SortedValues() []V {
	keys := m.SortedKeys()
	values := make([]V, 0, len(keys))
	for _, k := range keys {
		if v, ok := m.Load(k); ok {
			values = append(values, v)
		}
	}
	return values
}
