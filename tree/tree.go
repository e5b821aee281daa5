// Package tree provides the insertion-ordered nested mapping that aggregation
// results are folded into. A Mapping is owned by a single aggregation call and
// is not safe for concurrent mutation.
package tree

import "sort"

// Mapping is a nested mapping from string keys to either leaf values or
// further *Mapping nodes. Keys iterate in insertion order. A Mapping may also
// hold a single bare root value when a root-level unit exports a non-map
// value (see Bare).
type Mapping struct {
	keys    []string
	entries map[string]any
	bare    any
	hasBare bool
}

// New creates an empty Mapping.
func New() *Mapping {
	return &Mapping{entries: make(map[string]any)}
}

// FromMap creates a Mapping from a plain map. Go maps carry no source order,
// so keys are normalized to sorted order.
func FromMap(m map[string]any) *Mapping {
	result := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		result.SetEntry(k, m[k])
	}
	return result
}

// Len returns the number of direct entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the direct keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Entry returns the direct entry for key.
func (m *Mapping) Entry(key string) (any, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// SetEntry sets a direct entry, appending the key on first insertion.
func (m *Mapping) SetEntry(key string, value any) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// Has reports whether a value exists at the given key path. An empty path
// reports whether a bare root value is set.
func (m *Mapping) Has(path ...string) bool {
	_, ok := m.Get(path...)
	return ok
}

// Get returns the value at the given key path. An empty path returns the bare
// root value, if any.
func (m *Mapping) Get(path ...string) (any, bool) {
	if len(path) == 0 {
		return m.bare, m.hasBare
	}
	current := m
	for i, key := range path {
		value, ok := current.entries[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return value, true
		}
		child, ok := value.(*Mapping)
		if !ok {
			return nil, false
		}
		current = child
	}
	return nil, false
}

// Set stores value at the given key path, creating intermediate nodes on
// demand. An intermediate holding a plain map is promoted to a node keeping
// its fields; any other leaf in the way is replaced by a fresh node.
// Setting at an empty path grafts map-shaped values onto the root and stores
// anything else as the bare root value.
func (m *Mapping) Set(path []string, value any) {
	if len(path) == 0 {
		switch v := value.(type) {
		case *Mapping:
			for _, k := range v.keys {
				m.SetEntry(k, v.entries[k])
			}
		case map[string]any:
			grafted := FromMap(v)
			for _, k := range grafted.keys {
				m.SetEntry(k, grafted.entries[k])
			}
		default:
			m.bare = value
			m.hasBare = true
		}
		return
	}

	current := m
	for _, key := range path[:len(path)-1] {
		child, ok := current.entries[key].(*Mapping)
		if !ok {
			// A map-shaped leaf is promoted to a node so its fields survive.
			if existing, isMap := current.entries[key].(map[string]any); isMap {
				child = FromMap(existing)
			} else {
				child = New()
			}
			current.SetEntry(key, child)
		}
		current = child
	}
	current.SetEntry(path[len(path)-1], value)
}

// Bare returns the bare root value set by a root-level non-map export.
func (m *Mapping) Bare() (any, bool) {
	return m.bare, m.hasBare
}
