package fwparse

import (
	"regexp"
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
)

var (
	batchIDToken      = regexp.MustCompile(`(?i)\$\{BatchId\}`)
	sourceSystemToken = regexp.MustCompile(`(?i)\$\{SourceSystem\}`)
)

// ResolveValue produces the raw input for a field: a fixed-width slice of
// line, a constant (with ${BatchId}/${SourceSystem} token substitution),
// or the job's shared import timestamp. fixedWidth reports whether the
// source was "fixedWidth" (the default), which tells the record parser
// whether to run the result back through the field's type parser.
func ResolveValue(field layout.FieldSpec, line string, ctx ImportContext) (value any, fixedWidth bool, err error) {
	source := strings.ToLower(field.Option("source", "fixedWidth"))

	switch source {
	case "constant":
		return substituteTokens(field.Options["constantValue"], ctx), false, nil
	case "now":
		t := ctx.ImportedAtUTC
		if strings.ToLower(field.Option("nowKind", "")) == "local" {
			t = t.Local()
		}
		return t, false, nil
	case "fixedwidth":
		fallthrough
	default:
		return Slice(line, field.StartIndex0, field.Length), true, nil
	}
}

func substituteTokens(s string, ctx ImportContext) string {
	s = batchIDToken.ReplaceAllLiteralString(s, ctx.BatchID)
	s = sourceSystemToken.ReplaceAllLiteralString(s, ctx.SourceSystem)
	return s
}
