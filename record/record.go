// Package record implements a string-keyed dynamic record: an
// insertion-ordered mapping with automatic recursive wrapping of nested raw
// mappings, set-like union/difference combination, and optional type-stability
// enforcement on reassignment.
//
// A Record is not thread-safe; concurrent mutation must be serialized by the
// caller, same as any ordinary mutable in-memory map.
package record

import (
	"fmt"
	"iter"
	"reflect"
)

// Reserved names that Set routes to the record's own slots instead of the
// data map. They can never appear as data keys.
const (
	reservedFields            = "fields"
	reservedFieldTypes        = "fieldTypes"
	reservedStrictSubtraction = "strictSubtraction"
	reservedStrictTyping      = "strictTyping"
)

// Config carries the two behavior flags of a Record.
type Config struct {
	// StrictSubtraction makes difference remove a key only when the operand's
	// value also compares equal to the stored one. When false, difference
	// removes by key alone.
	StrictSubtraction bool

	// StrictTyping rejects reassigning an existing field to a value whose
	// type tag differs from the one recorded at the previous non-nil write.
	StrictTyping bool
}

func DefaultConfig() Config {
	return Config{StrictSubtraction: true}
}

// Record is a mapping-backed value object. User data lives in a separate
// ordered FieldMap, so data keys can never shadow the record's own storage or
// configuration.
//
// Keys are normalized on write (see NormalizeKey); reads, deletes and
// containment checks use the literal key, so fields whose original key
// contained special characters must be addressed by their normalized name.
type Record struct {
	fields            *FieldMap
	types             map[string]TypeTag
	strictSubtraction bool
	strictTyping      bool
}

// New builds a record with DefaultConfig, seeded from source. Source may be
// nil (empty record), a map[string]any, or another *Record; anything else
// fails with ErrTypeConstraint.
func New(source any) (*Record, error) {
	return NewWithConfig(source, DefaultConfig())
}

// NewWithConfig builds a record with explicit flags. Seeding replays every
// source pair through Set, so nested raw mappings are wrapped into records at
// construction time and normalization applies to the source keys.
func NewWithConfig(source any, cfg Config) (*Record, error) {
	switch source.(type) {
	case nil, map[string]any, *Record:
	default:
		return nil, fmt.Errorf("source is %T, want map[string]any or *Record: %w", source, ErrTypeConstraint)
	}

	r := &Record{
		fields:            NewFieldMap(),
		types:             map[string]TypeTag{},
		strictSubtraction: cfg.StrictSubtraction,
		strictTyping:      cfg.StrictTyping,
	}
	if source == nil {
		return r, nil
	}
	if _, err := r.UnionInPlace(source); err != nil {
		return nil, err
	}
	return r, nil
}

// Set stores value under the normalized name.
//
// The four reserved names route to the record's own slots after a control
// type check: fields wants map[string]any, fieldTypes wants
// map[string]TypeTag, the flags want bool. Reserved assignment bypasses
// normalization of the incoming map's keys, wrapping and type tracking.
//
// For data keys: with StrictTyping enabled, a non-nil value offered for an
// existing field must carry the tag recorded at the previous non-nil write.
// Raw mappings are wrapped in a fresh default-config record exactly once at
// store time; nested records do not inherit the parent's flags. A nil value
// stores as-is and leaves the recorded tag untouched, so a field set to nil
// can subsequently change type even under strict typing.
//
// Two distinct names that normalize to the same identifier share one slot;
// the later write wins.
func (r *Record) Set(name string, value any) error {
	name = NormalizeKey(name)

	switch name {
	case reservedFields:
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s is a control slot and takes map[string]any, got %T: %w", name, value, ErrTypeConstraint)
		}
		r.fields = FromMap(m)
		return nil
	case reservedFieldTypes:
		m, ok := value.(map[string]TypeTag)
		if !ok {
			return fmt.Errorf("%s is a control slot and takes map[string]TypeTag, got %T: %w", name, value, ErrTypeConstraint)
		}
		r.types = m
		return nil
	case reservedStrictSubtraction:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s is a control slot and takes bool, got %T: %w", name, value, ErrTypeConstraint)
		}
		r.strictSubtraction = b
		return nil
	case reservedStrictTyping:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s is a control slot and takes bool, got %T: %w", name, value, ErrTypeConstraint)
		}
		r.strictTyping = b
		return nil
	}

	tag := TagOf(value)
	if r.strictTyping && value != nil {
		// A key whose stored value is nil is unlocked even though its tag
		// lingers: nil writes neither update nor enforce the tag.
		if cur, ok := r.fields.Get(name); ok && cur != nil {
			if prev, ok := r.types[name]; ok && prev != tag {
				return fmt.Errorf("field %q is locked to %s, offered %s: %w", name, prev, tag, ErrTypeConstraint)
			}
		}
	}

	if m, ok := value.(map[string]any); ok {
		nested, err := New(m)
		if err != nil {
			return err
		}
		r.fields.Set(name, nested)
	} else {
		r.fields.Set(name, value)
	}
	if value != nil {
		r.types[name] = tag
	}
	return nil
}

// Get returns the value stored under the literal key, or ErrMissingField.
func (r *Record) Get(name string) (any, error) {
	if v, ok := r.fields.Get(name); ok {
		return v, nil
	}
	return nil, fmt.Errorf("field %q: %w", name, ErrMissingField)
}

// Delete removes the field or fails with ErrMissingField. The recorded type
// tag is left stale on purpose; strict typing only consults it for keys
// currently present, so a deleted key can come back under any type.
func (r *Record) Delete(name string) error {
	if !r.fields.Delete(name) {
		return fmt.Errorf("field %q: %w", name, ErrMissingField)
	}
	return nil
}

// Has reports whether the literal key exists at the immediate level.
func (r *Record) Has(key string) bool {
	return r.fields.Has(key)
}

func (r *Record) Len() int {
	return r.fields.Len()
}

func (r *Record) Empty() bool {
	return r.fields.Len() == 0
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.fields.Keys()
}

// All iterates fields in insertion order. The sequence is restartable.
func (r *Record) All() iter.Seq2[string, any] {
	return r.fields.All()
}

// UnionInPlace folds every pair of other into the record through Set, so the
// incoming pairs go through normalization, recursive wrapping and strict
// typing like direct assignments. The right side wins on key conflicts.
// Returns the receiver. The operand must be a map[string]any or *Record;
// anything else fails with ErrUnsupportedOperand. For a map operand the pair
// order is the Go map iteration order.
func (r *Record) UnionInPlace(other any) (*Record, error) {
	pairs, ok := operandPairs(other)
	if !ok {
		return nil, fmt.Errorf("union with %T: %w", other, ErrUnsupportedOperand)
	}
	for k, v := range pairs {
		if err := r.Set(k, v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Union returns a new record with the receiver's flags and contents combined
// with other. The receiver is not modified.
func (r *Record) Union(other any) (*Record, error) {
	out, err := NewWithConfig(r, Config{
		StrictSubtraction: r.strictSubtraction,
		StrictTyping:      r.strictTyping,
	})
	if err != nil {
		return nil, err
	}
	return out.UnionInPlace(other)
}

// DifferenceInPlace removes keys named by other. With StrictSubtraction a key
// goes only when its stored value compares structurally equal to the
// operand's value; otherwise removal is by key alone. Keys absent from the
// record are silently ignored in both modes. Operand keys are matched
// literally, without normalization. Returns the receiver.
func (r *Record) DifferenceInPlace(other any) (*Record, error) {
	pairs, ok := operandPairs(other)
	if !ok {
		return nil, fmt.Errorf("difference with %T: %w", other, ErrUnsupportedOperand)
	}
	for k, v := range pairs {
		if r.strictSubtraction {
			if cur, ok := r.fields.Get(k); ok && equalValue(cur, v) {
				r.fields.Delete(k)
			}
			continue
		}
		r.fields.Delete(k)
	}
	return r, nil
}

// Difference returns a new record with the receiver's flags and contents
// minus other. The receiver is not modified.
func (r *Record) Difference(other any) (*Record, error) {
	out, err := NewWithConfig(r, Config{
		StrictSubtraction: r.strictSubtraction,
		StrictTyping:      r.strictTyping,
	})
	if err != nil {
		return nil, err
	}
	return out.DifferenceInPlace(other)
}

// Equal reports structural equality against a map[string]any or another
// *Record. Nested records compare as their field maps, recursively. Any other
// operand type compares unequal; Equal never fails.
func (r *Record) Equal(other any) bool {
	switch o := other.(type) {
	case map[string]any:
		return r.fields.EqualMap(o)
	case *Record:
		return o != nil && r.fields.Equal(o.fields)
	}
	return false
}

// String defers to the underlying field map's rendering.
func (r *Record) String() string {
	return r.fields.String()
}

// Call invokes the callable stored under name with exactly the supplied
// arguments; the record itself is never passed as an implicit receiver.
// Fails with ErrMissingField for an absent field and ErrTypeConstraint when
// the value is not a func or the arguments do not fit its signature.
func (r *Record) Call(name string, args ...any) ([]any, error) {
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	fn := reflect.ValueOf(v)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("field %q holds %s, not a callable: %w", name, TagOf(v), ErrTypeConstraint)
	}

	ft := fn.Type()
	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("field %q wants at least %d arguments, got %d: %w", name, ft.NumIn()-1, len(args), ErrTypeConstraint)
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("field %q wants %d arguments, got %d: %w", name, ft.NumIn(), len(args), ErrTypeConstraint)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if ft.IsVariadic() && i >= ft.NumIn()-1 {
			want = ft.In(ft.NumIn() - 1).Elem()
		} else {
			want = ft.In(i)
		}
		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, fmt.Errorf("field %q argument %d is %s, want %s: %w", name, i, av.Type(), want, ErrTypeConstraint)
		}
		in[i] = av
	}

	out := fn.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

// Fields exposes the underlying ordered map. It is the escape hatch for
// native mapping operations the record does not re-expose on itself.
func (r *Record) Fields() *FieldMap {
	return r.fields
}

// Types exposes the recorded type tags. Entries for deleted fields linger
// until the key is written again.
func (r *Record) Types() map[string]TypeTag {
	return r.types
}

func (r *Record) StrictSubtraction() bool {
	return r.strictSubtraction
}

func (r *Record) SetStrictSubtraction(on bool) {
	r.strictSubtraction = on
}

func (r *Record) StrictTyping() bool {
	return r.strictTyping
}

func (r *Record) SetStrictTyping(on bool) {
	r.strictTyping = on
}

// operandPairs resolves the closed mapping-or-record operand union into a
// pair sequence. The second result is false for any other type.
func operandPairs(other any) (iter.Seq2[string, any], bool) {
	switch o := other.(type) {
	case map[string]any:
		return func(yield func(string, any) bool) {
			for k, v := range o {
				if !yield(k, v) {
					return
				}
			}
		}, true
	case *Record:
		if o == nil {
			return func(func(string, any) bool) {}, true
		}
		return o.fields.All(), true
	}
	return nil, false
}

// equalValue is the structural comparison behind Equal, FieldMap equality and
// strict subtraction: records compare as their field maps, raw maps compare
// entry-wise, leaves fall back to reflect.DeepEqual.
func equalValue(a, b any) bool {
	if ar, ok := a.(*Record); ok && ar != nil {
		return ar.Equal(b)
	}
	if br, ok := b.(*Record); ok && br != nil {
		return br.Equal(a)
	}
	if am, ok := a.(map[string]any); ok {
		bm, ok := b.(map[string]any)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !equalValue(av, bv) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
