package fwparse

import (
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
)

type dateParser struct{}

func (dateParser) Parse(raw string, spec layout.FieldSpec, rules layout.ParsingRules) (any, error) {
	dr := rules.Date

	if isAllSpaces(raw) && dr.TreatAllSpacesAsNull {
		return nil, nil
	}

	collapsed := collapseSpaces(raw)
	if collapsed == "" {
		return nil, nil
	}

	if isAllZeros(raw) && dr.TreatAllZerosAsNull {
		return nil, nil
	}

	formats := dr.Formats
	if opt := spec.Option("formats", ""); opt != "" {
		formats = strings.Split(opt, "|")
	}

	if t, ok := tryParseExactDate(collapsed, formats); ok {
		return t, nil
	}
	if t, ok := fallbackParseDate(collapsed); ok {
		return t, nil
	}

	return nil, newRecordError(spec.Name, raw, errDateFormat(collapsed, formats))
}

type dateFormatErr struct {
	value   string
	formats []string
}

func (e dateFormatErr) Error() string {
	return "value " + e.value + " does not match any configured date format " +
		"(" + strings.Join(e.formats, "|") + ") or the permissive fallback"
}

func errDateFormat(value string, formats []string) error {
	return dateFormatErr{value: value, formats: formats}
}
