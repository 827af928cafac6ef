package fwparse

import (
	"sort"
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
)

type stringParser struct{}

func (stringParser) Parse(raw string, spec layout.FieldSpec, rules layout.ParsingRules) (any, error) {
	sr := rules.String

	if isAllSpaces(raw) {
		behavior := layout.StringAllSpacesBehavior(spec.Option("allSpacesBehavior", string(sr.AllSpacesBehavior)))
		switch behavior {
		case layout.StringAllSpacesEmpty:
			return "", nil
		case layout.StringAllSpacesKeep:
			return raw, nil
		default:
			return nil, nil
		}
	}

	trimMode := layout.TrimMode(spec.Option("trim", string(sr.DefaultTrim)))
	caseMode := layout.CaseMode(spec.Option("case", string(sr.CaseNormalization)))

	value := applyCase(applyTrim(raw, trimMode), caseMode)

	replacements := mergeReplacements(sr.Replacements, spec.Option("replacements", ""))
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		value = strings.ReplaceAll(value, k, replacements[k])
	}

	return value, nil
}

// mergeReplacements merges a rule-level replacement map with a field-level
// pipe-separated "k=v|k2=v2" override; field-level entries win on key
// collision.
func mergeReplacements(base map[string]string, fieldOpt string) map[string]string {
	result := make(map[string]string, len(base))
	for k, v := range base {
		result[k] = v
	}
	if fieldOpt == "" {
		return result
	}
	for _, pair := range strings.Split(fieldOpt, "|") {
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		result[kv[0]] = kv[1]
	}
	return result
}
