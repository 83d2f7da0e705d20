package record

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// FieldMap is the string-keyed storage behind a Record. It preserves
// insertion order: setting a new key appends it, re-setting an existing key
// keeps its position, deleting and re-adding moves it to the end.
//
// Records expose their FieldMap through Record.Fields as an escape hatch, so
// callers get plain mapping operations (lookup with default, key enumeration,
// removal, clearing) without the record reserving any data-key names for them.
type FieldMap struct {
	keys    []string
	entries map[string]any
}

func NewFieldMap() *FieldMap {
	return &FieldMap{entries: map[string]any{}}
}

// FromMap builds a FieldMap from a plain Go map. Go maps carry no order, so
// the initial key order is unspecified.
func FromMap(m map[string]any) *FieldMap {
	fm := &FieldMap{
		keys:    make([]string, 0, len(m)),
		entries: make(map[string]any, len(m)),
	}
	for k, v := range m {
		fm.keys = append(fm.keys, k)
		fm.entries[k] = v
	}
	return fm
}

func (fm *FieldMap) Set(key string, value any) {
	if _, ok := fm.entries[key]; !ok {
		fm.keys = append(fm.keys, key)
	}
	fm.entries[key] = value
}

func (fm *FieldMap) Get(key string) (any, bool) {
	value, ok := fm.entries[key]
	return value, ok
}

// GetOr returns the value for key, or fallback when the key is absent.
func (fm *FieldMap) GetOr(key string, fallback any) any {
	if value, ok := fm.entries[key]; ok {
		return value
	}
	return fallback
}

func (fm *FieldMap) Has(key string) bool {
	_, ok := fm.entries[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (fm *FieldMap) Delete(key string) bool {
	if _, ok := fm.entries[key]; !ok {
		return false
	}
	delete(fm.entries, key)
	for i, k := range fm.keys {
		if k == key {
			fm.keys = append(fm.keys[:i], fm.keys[i+1:]...)
			break
		}
	}
	return true
}

func (fm *FieldMap) Len() int {
	return len(fm.entries)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (fm *FieldMap) Keys() []string {
	out := make([]string, len(fm.keys))
	copy(out, fm.keys)
	return out
}

// All iterates entries in insertion order. The sequence is restartable.
func (fm *FieldMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range fm.keys {
			if !yield(k, fm.entries[k]) {
				return
			}
		}
	}
}

func (fm *FieldMap) Clear() {
	fm.keys = fm.keys[:0]
	for key := range fm.entries {
		delete(fm.entries, key)
	}
}

// Clone returns a shallow copy: values are shared, order is preserved.
func (fm *FieldMap) Clone() *FieldMap {
	out := &FieldMap{
		keys:    make([]string, len(fm.keys)),
		entries: maps.Clone(fm.entries),
	}
	copy(out.keys, fm.keys)
	return out
}

// Map returns the entries as a plain Go map (shallow copy, order lost).
func (fm *FieldMap) Map() map[string]any {
	return maps.Clone(fm.entries)
}

// Equal reports structural equality with another FieldMap. Order does not
// participate: two maps with the same entries in different order are equal.
func (fm *FieldMap) Equal(other *FieldMap) bool {
	if other == nil || len(fm.entries) != len(other.entries) {
		return false
	}
	for k, v := range fm.entries {
		ov, ok := other.entries[k]
		if !ok || !equalValue(v, ov) {
			return false
		}
	}
	return true
}

// EqualMap reports structural equality with a plain Go map.
func (fm *FieldMap) EqualMap(m map[string]any) bool {
	if len(fm.entries) != len(m) {
		return false
	}
	for k, v := range fm.entries {
		mv, ok := m[k]
		if !ok || !equalValue(v, mv) {
			return false
		}
	}
	return true
}

// String renders the entries Go-map style, in insertion order.
func (fm *FieldMap) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for i, k := range fm.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%v", k, fm.entries[k])
	}
	sb.WriteByte(']')
	return sb.String()
}
