// Package layout holds the declarative schema that drives the fixed-width
// parsing engine: field positions, per-type parsing rules, and occurs-group
// (COBOL OCCURS) definitions, loaded from YAML copybook-derived layout files.
package layout

// Layout is the full schema for one source file format: the header fields
// applied to every line, the repeating occurs groups (empty for flat
// records), and the default parsing rules fields fall back to.
type Layout struct {
	HeaderFields []FieldSpec       `yaml:"headerFields"`
	OccursGroups []OccursGroupSpec `yaml:"occursGroups"`
	Rules        ParsingRules      `yaml:"rules"`
}

// FieldSpec describes one fixed-width field: where to slice it from the
// line (or item block, for occurs-group item fields), how to parse it, and
// where to write the parsed value.
type FieldSpec struct {
	Name    string            `yaml:"name"`
	Target  string            `yaml:"target"`
	Start   int               `yaml:"start"`
	Length  int               `yaml:"length"`
	Type    string            `yaml:"type"`
	Options map[string]string `yaml:"options"`

	// StartIndex0 is the zero-based form of Start, computed by Validate.
	StartIndex0 int `yaml:"-"`
}

// Option reads a field-level option, falling back to def when absent.
func (f FieldSpec) Option(key, def string) string {
	if v, ok := f.Options[key]; ok {
		return v
	}
	return def
}

// TerminationMode enumerates how an occurs group decides it has no more
// items to parse.
type TerminationMode string

const (
	TerminationPadding TerminationMode = "padding"
	TerminationCount   TerminationMode = "count"
)

// OccursGroupSpec describes one COBOL OCCURS repeating subrecord: a
// contiguous byte region within the line, divided into equal item blocks,
// each parsed into a child entity appended to a collection on the parent.
type OccursGroupSpec struct {
	Name                   string          `yaml:"name"`
	ParentCollectionTarget string          `yaml:"parentCollectionTarget"`
	ChildEntity            string          `yaml:"childEntity"`
	Start                  int             `yaml:"start"`
	Length                 int             `yaml:"length"`
	ItemLength             int             `yaml:"itemLength"`
	MaxItems               int             `yaml:"maxItems"`
	TerminationMode        TerminationMode `yaml:"terminationMode"`
	CountFieldTarget       string          `yaml:"countFieldTarget"`
	Sequence               SequenceSpec    `yaml:"sequence"`
	ItemFields             []FieldSpec     `yaml:"itemFields"`

	StartIndex0 int `yaml:"-"`
}

// SequenceSpec, when Enabled, assigns the i-th emitted child's Target
// property the value Start + i*Step.
type SequenceSpec struct {
	Enabled bool   `yaml:"enabled"`
	Target  string `yaml:"target"`
	Start   int64  `yaml:"start"`
	Step    int64  `yaml:"step"`
}

// TrimMode enumerates string trimming behavior.
type TrimMode string

const (
	TrimLeft  TrimMode = "left"
	TrimRight TrimMode = "right"
	TrimBoth  TrimMode = "both"
	TrimNone  TrimMode = "none"
)

// CaseMode enumerates string case normalization.
type CaseMode string

const (
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseNone  CaseMode = "none"
)

// AllZerosBehavior enumerates what a numeric/integer field does when its
// raw text is all zeros.
type AllZerosBehavior string

const (
	AllZerosNull AllZerosBehavior = "null"
	AllZerosZero AllZerosBehavior = "zero"
)

// StringAllSpacesBehavior enumerates what a string field emits when its
// raw text is all spaces.
type StringAllSpacesBehavior string

const (
	StringAllSpacesNull  StringAllSpacesBehavior = "null"
	StringAllSpacesEmpty StringAllSpacesBehavior = "empty"
	StringAllSpacesKeep  StringAllSpacesBehavior = "keep"
)

// BoolAllSpacesBehavior enumerates what a boolean field emits when its raw
// text is all spaces.
type BoolAllSpacesBehavior string

const (
	BoolAllSpacesNull  BoolAllSpacesBehavior = "null"
	BoolAllSpacesFalse BoolAllSpacesBehavior = "false"
	BoolAllSpacesTrue  BoolAllSpacesBehavior = "true"
)

// ParsingRules holds the default behavior for each field type, applied
// whenever a FieldSpec does not override it via Options.
type ParsingRules struct {
	Date    DateRules    `yaml:"date"`
	Numeric NumericRules `yaml:"numeric"`
	Integer IntegerRules `yaml:"integer"`
	String  StringRules  `yaml:"string"`
	Boolean BooleanRules `yaml:"boolean"`
}

type DateRules struct {
	Formats              []string `yaml:"formats"`
	TreatAllZerosAsNull  bool     `yaml:"treatAllZerosAsNull"`
	TreatAllSpacesAsNull bool     `yaml:"treatAllSpacesAsNull"`
}

type NumericRules struct {
	AllowOverpunch              bool             `yaml:"allowOverpunch"`
	TreatAllSpacesAsNull        bool             `yaml:"treatAllSpacesAsNull"`
	AllZerosBehavior            AllZerosBehavior `yaml:"allZerosBehavior"`
	DefaultImpliedDecimalPlaces int              `yaml:"defaultImpliedDecimalPlaces"`
}

type IntegerRules struct {
	TreatAllSpacesAsNull bool             `yaml:"treatAllSpacesAsNull"`
	AllZerosBehavior     AllZerosBehavior `yaml:"allZerosBehavior"`
}

type StringRules struct {
	DefaultTrim       TrimMode                `yaml:"defaultTrim"`
	AllSpacesBehavior StringAllSpacesBehavior `yaml:"allSpacesBehavior"`
	CaseNormalization CaseMode                `yaml:"caseNormalization"`
	Replacements      map[string]string       `yaml:"replacements"`
}

type BooleanRules struct {
	TrueValues        []string              `yaml:"trueValues"`
	FalseValues       []string              `yaml:"falseValues"`
	AnyNonBlankIsTrue bool                  `yaml:"anyNonBlankIsTrue"`
	AllSpacesBehavior BoolAllSpacesBehavior `yaml:"allSpacesBehavior"`
}
