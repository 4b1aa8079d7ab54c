// Package attr turns identifier-style attribute keys into markup syntax and
// stores, merges and renders attribute values.
//
// Values are plain Go values with markup meaning:
//
//	nil           bare attribute:      x-data
//	false         omitted entirely
//	true          name repeated:       checked="checked"
//	map, slice,   JSON, single-quoted: x-data='{"open": false}'
//	*Object
//	anything else escaped text:        class="a b"
package attr

import (
	"sort"
)

// Map is an attribute map that remembers insertion order. Keys are stored
// exactly as given; callers normalize them first.
type Map struct {
	keys []string
	vals map[string]any
}

func NewMap() *Map {
	return &Map{vals: make(map[string]any)}
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored for key and whether it was set. A nil value
// with ok true is a bare attribute.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.vals[key]
	return v, ok
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key, overwriting any previous value.
func (m *Map) Set(key string, v any) {
	if m.vals == nil {
		m.vals = make(map[string]any)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Sorted returns the keys in the order they are rendered.
func (m *Map) Sorted() []string {
	keys := m.Keys()
	sort.Strings(keys)
	return keys
}

func (m *Map) Clone() *Map {
	c := NewMap()
	if m == nil {
		return c
	}
	for _, k := range m.keys {
		c.Set(k, m.vals[k])
	}
	return c
}
