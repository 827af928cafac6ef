package fwparse

import (
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
)

// FieldParser converts an already-sliced fixed-width string into a typed
// value, or into nil when the field is semantically absent. It returns an
// error only when the field is present but malformed.
type FieldParser interface {
	Parse(raw string, spec layout.FieldSpec, rules layout.ParsingRules) (any, error)
}

// NewFieldParser dispatches a field's type tag to its parser,
// case-insensitively. Per spec.md 9's "tightening is safer" guidance this
// returns an error for an unrecognized tag. layout.Validate already
// rejects unknown non-empty tags at load time; an empty tag passes
// Validate and is rejected here, the first time a fixed-width field
// without a type is parsed.
func NewFieldParser(typeTag string) (FieldParser, error) {
	switch strings.ToLower(typeTag) {
	case "date":
		return dateParser{}, nil
	case "numeric":
		return numericParser{}, nil
	case "integer":
		return integerParser{}, nil
	case "string":
		return stringParser{}, nil
	case "boolean":
		return booleanParser{}, nil
	default:
		return nil, newConfigError("unknown field type %q", typeTag)
	}
}
