// Package flatmap implements a small map with a similar surface to the
// ordinary built-in map, but backed by a single contiguous slice of
// key/value pairs instead of a hash table. Lookups are O(n), inserts are
// O(1) amortized, and the pairs can be sorted in place like an array,
// which enables binary searching on either the keys or the values.
// Iteration always runs in the current slot order, which is insertion
// order until something reorders it.
package flatmap

import (
	"errors"
	"iter"
)

var (
	ErrKeyNotFound = errors.New("flatmap: key not found")
	ErrOutOfBounds = errors.New("flatmap: index out of bounds")
)

// Entry is a single key/value pair occupying one slot of the map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// FlatMap is an insertion-ordered map over a contiguous slice of entries.
// It does no locking; a caller sharing one across goroutines must provide
// its own mutual exclusion. Pointers handed out by Ref, GetOrInsert,
// EntryAt and Scan stay valid only until the next insert, Delete, Clear,
// Reserve or sort, any of which may move or reallocate the slots.
type FlatMap[K comparable, V any] struct {
	items []Entry[K, V]
}

// New returns an empty FlatMap.
func New[K comparable, V any]() *FlatMap[K, V] {
	return &FlatMap[K, V]{}
}

// NewWithCapacity returns an empty FlatMap with room for capacity
// entries before the storage has to grow.
func NewWithCapacity[K comparable, V any](capacity int) *FlatMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &FlatMap[K, V]{
		items: make([]Entry[K, V], 0, capacity),
	}
}

// lookup returns the slot index of the first entry matching key, or -1
func (m *FlatMap[K, V]) lookup(key K) int {
	for i := range m.items {
		if m.items[i].Key == key {
			return i
		}
	}
	return -1
}

// At returns the value of the first entry matching key. It returns
// ErrKeyNotFound if no entry has that key.
func (m *FlatMap[K, V]) At(key K) (V, error) {
	i := m.lookup(key)
	if i < 0 {
		return *new(V), ErrKeyNotFound
	}
	return m.items[i].Value, nil
}

// Ref returns a pointer to the value of the first entry matching key,
// so the value can be updated in place. It returns ErrKeyNotFound if no
// entry has that key.
func (m *FlatMap[K, V]) Ref(key K) (*V, error) {
	i := m.lookup(key)
	if i < 0 {
		return nil, ErrKeyNotFound
	}
	return &m.items[i].Value, nil
}

// Get returns the value of the first entry matching key and a boolean
// reporting whether any entry matched. It never modifies the map.
func (m *FlatMap[K, V]) Get(key K) (V, bool) {
	i := m.lookup(key)
	if i < 0 {
		return *new(V), false
	}
	return m.items[i].Value, true
}

// GetOrInsert returns a pointer to the value of the first entry matching
// key, appending a new entry holding the zero value first if no entry
// matched. The map grows by exactly one entry in that case.
func (m *FlatMap[K, V]) GetOrInsert(key K) *V {
	i := m.lookup(key)
	if i < 0 {
		m.items = append(m.items, Entry[K, V]{Key: key})
		i = len(m.items) - 1
	}
	return &m.items[i].Value
}

// EntryAt returns a pointer to the entry in the given slot, independent
// of any key. It returns ErrOutOfBounds if index is not below Len.
func (m *FlatMap[K, V]) EntryAt(index int) (*Entry[K, V], error) {
	if index < 0 || index >= len(m.items) {
		return nil, ErrOutOfBounds
	}
	return &m.items[index], nil
}

// Len returns the current number of entries
func (m *FlatMap[K, V]) Len() int {
	return len(m.items)
}

// IsEmpty reports whether the map holds no entries
func (m *FlatMap[K, V]) IsEmpty() bool {
	return len(m.items) == 0
}

// Contains reports whether any entry matches key
func (m *FlatMap[K, V]) Contains(key K) bool {
	return m.lookup(key) >= 0
}

// Delete removes every entry matching key, not just the first. The
// surviving entries keep their relative order; this is a stable
// partition followed by a truncation, not a swap with the last slot.
func (m *FlatMap[K, V]) Delete(key K) {
	keep := m.items[:0]
	for i := range m.items {
		if m.items[i].Key != key {
			keep = append(keep, m.items[i])
		}
	}
	// zero the vacated tail so dropped values do not pin memory
	for i := len(keep); i < len(m.items); i++ {
		m.items[i] = Entry[K, V]{}
	}
	m.items = keep
}

// Clear removes all entries, keeping the underlying storage capacity.
func (m *FlatMap[K, V]) Clear() {
	for i := range m.items {
		m.items[i] = Entry[K, V]{}
	}
	m.items = m.items[:0]
}

// Reserve grows the underlying storage so the map can hold capacity
// entries without reallocating. It never changes the length or the
// order of the entries, and it never shrinks.
func (m *FlatMap[K, V]) Reserve(capacity int) {
	if capacity <= cap(m.items) {
		return
	}
	items := make([]Entry[K, V], len(m.items), capacity)
	copy(items, m.items)
	m.items = items
}

// Range iterates over all keys and values in slot order, stopping
// early if fn returns false.
func (m *FlatMap[K, V]) Range(fn func(key K, value V) bool) {
	for i := range m.items {
		if !fn(m.items[i].Key, m.items[i].Value) {
			return
		}
	}
}

// Reverse iterates over all keys and values in reverse slot order,
// stopping early if fn returns false.
func (m *FlatMap[K, V]) Reverse(fn func(key K, value V) bool) {
	for i := len(m.items) - 1; i >= 0; i-- {
		if !fn(m.items[i].Key, m.items[i].Value) {
			return
		}
	}
}

// Scan iterates over the entries themselves in slot order so the caller
// can update values in place, stopping early if fn returns false. The
// caller must not insert or delete while scanning.
func (m *FlatMap[K, V]) Scan(fn func(entry *Entry[K, V]) bool) {
	for i := range m.items {
		if !fn(&m.items[i]) {
			return
		}
	}
}

// All returns a forward iterator over all keys and values in slot order.
func (m *FlatMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.items {
			if !yield(m.items[i].Key, m.items[i].Value) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over all keys and values.
func (m *FlatMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.items) - 1; i >= 0; i-- {
			if !yield(m.items[i].Key, m.items[i].Value) {
				return
			}
		}
	}
}

// Keys returns the keys in slot order
func (m *FlatMap[K, V]) Keys() []K {
	keys := make([]K, len(m.items))
	for i := range m.items {
		keys[i] = m.items[i].Key
	}
	return keys
}

// Values returns the values in slot order
func (m *FlatMap[K, V]) Values() []V {
	values := make([]V, len(m.items))
	for i := range m.items {
		values[i] = m.items[i].Value
	}
	return values
}
