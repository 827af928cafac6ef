package fwparse

import (
	"fmt"

	"github.com/cobolimport/flatfileimport/layout"
)

// ConfigError is the fatal, load/first-use-time error type for problems
// such as an unresolvable property path, a missing registry entity, or a
// missing append method on a collection. It is the same shape
// layout.ConfigError uses so the orchestrator can treat every
// configuration failure, from either package, identically.
type ConfigError = layout.ConfigError

func newConfigError(format string, args ...any) *ConfigError {
	e := &ConfigError{}
	e.Add(format, args...)
	return e
}

// RecordError is a per-line, recoverable parse failure: a malformed date,
// an out-of-range integer, an unconvertible value. It carries enough
// context (field name, raw text, underlying cause) for an orchestrator to
// log and skip the offending line, per spec.md 7.
type RecordError struct {
	FieldName string
	RawText   string
	Cause     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("field %q: cannot parse %q: %v", e.FieldName, e.RawText, e.Cause)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}

func newRecordError(fieldName, rawText string, cause error) *RecordError {
	return &RecordError{FieldName: fieldName, RawText: rawText, Cause: cause}
}
