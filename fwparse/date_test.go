package fwparse

import (
	"testing"
	"time"

	"github.com/cobolimport/flatfileimport/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateParser_ExplicitFormat(t *testing.T) {
	p := dateParser{}
	spec := layout.FieldSpec{Name: "dob"}
	rules := layout.ParsingRules{Date: layout.DateRules{Formats: []string{"20060102"}}}

	v, err := p.Parse("20240131", spec, rules)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), v)
}

func TestDateParser_AllSpacesNull(t *testing.T) {
	p := dateParser{}
	spec := layout.FieldSpec{Name: "dob"}
	rules := layout.ParsingRules{Date: layout.DateRules{TreatAllSpacesAsNull: true, Formats: []string{"20060102"}}}

	v, err := p.Parse("        ", spec, rules)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateParser_AllZerosNull(t *testing.T) {
	p := dateParser{}
	spec := layout.FieldSpec{Name: "dob"}
	rules := layout.ParsingRules{Date: layout.DateRules{TreatAllZerosAsNull: true, Formats: []string{"20060102"}}}

	v, err := p.Parse("00000000", spec, rules)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateParser_MalformedIsRecordError(t *testing.T) {
	p := dateParser{}
	spec := layout.FieldSpec{Name: "dob"}
	rules := layout.ParsingRules{Date: layout.DateRules{Formats: []string{"20060102"}}}

	_, err := p.Parse("NOTADATE", spec, rules)
	require.Error(t, err)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
}

func TestDateParser_FieldOptionOverridesFormats(t *testing.T) {
	p := dateParser{}
	spec := layout.FieldSpec{Name: "dob", Options: map[string]string{"formats": "01/02/2006"}}
	rules := layout.ParsingRules{Date: layout.DateRules{Formats: []string{"20060102"}}}

	v, err := p.Parse("01/31/2024", spec, rules)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), v)
}
