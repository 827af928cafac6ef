package layout

import "strings"

// KnownFieldTypes are the only field.type tags the parsing engine accepts,
// compared case-insensitively.
// Unlike the reflection-based source this system was distilled from,
// unknown type tags are rejected at load time rather than silently
// defaulting to the string parser (spec.md 9's "tightening is safer").
var KnownFieldTypes = map[string]bool{
	"date":    true,
	"numeric": true,
	"integer": true,
	"string":  true,
	"boolean": true,
}

// Validate checks every invariant in the layout schema and returns a
// *ConfigError listing every violation found, or nil if the layout is
// well-formed. Validate also fills in each FieldSpec's StartIndex0.
func Validate(l *Layout) error {
	var errs ConfigError

	headerTargets := make(map[string]bool, len(l.HeaderFields))
	for i := range l.HeaderFields {
		f := &l.HeaderFields[i]
		validateField(&errs, "headerFields", i, f)
		if f.Target != "" {
			headerTargets[f.Target] = true
		}
	}

	for gi := range l.OccursGroups {
		g := &l.OccursGroups[gi]
		validateOccursGroup(&errs, gi, g, headerTargets)
	}

	return errs.AsError()
}

func validateField(errs *ConfigError, section string, idx int, f *FieldSpec) {
	if f.Start < 1 {
		errs.Add("%s[%d] (%s): start must be >= 1, got %d", section, idx, f.Name, f.Start)
	}
	if f.Length < 0 {
		errs.Add("%s[%d] (%s): length must be >= 0, got %d", section, idx, f.Name, f.Length)
	}
	if f.Target == "" {
		errs.Add("%s[%d] (%s): target must not be empty", section, idx, f.Name)
	}
	if f.Type != "" && !KnownFieldTypes[strings.ToLower(f.Type)] {
		errs.Add("%s[%d] (%s): unknown field type %q", section, idx, f.Name, f.Type)
	}
	f.StartIndex0 = f.Start - 1
}

func validateOccursGroup(errs *ConfigError, idx int, g *OccursGroupSpec, headerTargets map[string]bool) {
	if g.Start < 1 {
		errs.Add("occursGroups[%d] (%s): start must be >= 1, got %d", idx, g.Name, g.Start)
	}
	if g.Length <= 0 {
		errs.Add("occursGroups[%d] (%s): length must be > 0, got %d", idx, g.Name, g.Length)
	}
	if g.ItemLength <= 0 {
		errs.Add("occursGroups[%d] (%s): itemLength must be > 0, got %d", idx, g.Name, g.ItemLength)
	}
	if g.MaxItems <= 0 {
		errs.Add("occursGroups[%d] (%s): maxItems must be > 0, got %d", idx, g.Name, g.MaxItems)
	}
	if g.ChildEntity == "" {
		errs.Add("occursGroups[%d] (%s): childEntity must not be empty", idx, g.Name)
	}
	if g.ParentCollectionTarget == "" {
		errs.Add("occursGroups[%d] (%s): parentCollectionTarget must not be empty", idx, g.Name)
	}
	if len(g.ItemFields) == 0 {
		errs.Add("occursGroups[%d] (%s): itemFields must not be empty", idx, g.Name)
	}

	switch g.TerminationMode {
	case TerminationPadding:
	case TerminationCount:
		if g.CountFieldTarget == "" {
			errs.Add("occursGroups[%d] (%s): countFieldTarget is required when terminationMode=count", idx, g.Name)
		} else if !headerTargets[g.CountFieldTarget] {
			errs.Add("occursGroups[%d] (%s): countFieldTarget %q must name a header field, not a field inside any occurs group",
				idx, g.Name, g.CountFieldTarget)
		}
	default:
		errs.Add("occursGroups[%d] (%s): unknown terminationMode %q", idx, g.Name, g.TerminationMode)
	}

	g.StartIndex0 = g.Start - 1

	itemTargets := make(map[string]bool, len(g.ItemFields))
	for i := range g.ItemFields {
		f := &g.ItemFields[i]
		validateField(errs, "occursGroups["+g.Name+"].itemFields", i, f)
		if f.Target != "" {
			itemTargets[f.Target] = true
		}
	}
	if g.TerminationMode == TerminationCount && g.CountFieldTarget != "" && itemTargets[g.CountFieldTarget] {
		errs.Add("occursGroups[%d] (%s): countFieldTarget %q must not also be an item field on the same group", idx, g.Name, g.CountFieldTarget)
	}
}
