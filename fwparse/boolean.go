package fwparse

import (
	"fmt"
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
)

type booleanParser struct{}

func (booleanParser) Parse(raw string, spec layout.FieldSpec, rules layout.ParsingRules) (any, error) {
	br := rules.Boolean

	if isAllSpaces(raw) {
		behavior := layout.BoolAllSpacesBehavior(spec.Option("allSpacesBehavior", string(br.AllSpacesBehavior)))
		switch behavior {
		case layout.BoolAllSpacesFalse:
			return false, nil
		case layout.BoolAllSpacesTrue:
			return true, nil
		default:
			return nil, nil
		}
	}

	trimmed := strings.TrimSpace(raw)

	anyNonBlankIsTrue := optBool(spec, "anyNonBlankIsTrue", br.AnyNonBlankIsTrue)
	if anyNonBlankIsTrue {
		return true, nil
	}

	trueValues := pipeList(spec, "trueValues", br.TrueValues)
	falseValues := pipeList(spec, "falseValues", br.FalseValues)

	for _, v := range trueValues {
		if strings.EqualFold(v, trimmed) {
			return true, nil
		}
	}
	for _, v := range falseValues {
		if strings.EqualFold(v, trimmed) {
			return false, nil
		}
	}

	return nil, newRecordError(spec.Name, raw, fmt.Errorf("value %q matches neither trueValues nor falseValues", trimmed))
}

func pipeList(spec layout.FieldSpec, key string, def []string) []string {
	v, ok := spec.Options[key]
	if !ok {
		return def
	}
	return strings.Split(v, "|")
}
