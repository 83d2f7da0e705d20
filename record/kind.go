package record

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindCallable
	KindRecord
	KindOther

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat:
		return true
	}
}

// TypeTag identifies the declared type of a field value. Kind carries the
// coarse classification; Type is set only for KindOther, pinning the exact
// reflect identity so that two distinct named types never compare equal.
type TypeTag struct {
	Kind KindEnum
	Type reflect.Type
}

func (t TypeTag) String() string {
	if t.Kind == KindOther && t.Type != nil {
		return t.Type.String()
	}
	return t.Kind.String()
}

// TagOf classifies a runtime value. Raw mappings and records share KindRecord,
// all integer widths share KindInt and both float widths share KindFloat, so
// reassignment across widths stays legal under strict typing.
func TagOf(value any) TypeTag {
	if value == nil {
		return TypeTag{Kind: KindNull}
	}

	switch value.(type) {
	case bool:
		return TypeTag{Kind: KindBool}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return TypeTag{Kind: KindInt}
	case float32, float64:
		return TypeTag{Kind: KindFloat}
	case string:
		return TypeTag{Kind: KindString}
	case map[string]any, *Record:
		return TypeTag{Kind: KindRecord}
	}

	rtype := reflect.TypeOf(value)
	if rtype.Kind() == reflect.Func {
		return TypeTag{Kind: KindCallable}
	}
	return TypeTag{Kind: KindOther, Type: rtype}
}
