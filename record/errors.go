package record

import "errors"

var (
	ErrTypeConstraint     = errors.New("value type not allowed")
	ErrMissingField       = errors.New("no such field")
	ErrUnsupportedOperand = errors.New("operand must be a map[string]any or *Record")
)
