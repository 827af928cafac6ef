package fwparse

import (
	"strconv"
	"testing"

	"github.com/cobolimport/flatfileimport/layout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericParser_Overpunch(t *testing.T) {
	p := numericParser{}
	spec := layout.FieldSpec{Name: "amt"}
	rules := layout.ParsingRules{Numeric: layout.NumericRules{
		AllowOverpunch:              true,
		DefaultImpliedDecimalPlaces: 2,
	}}

	v, err := p.Parse("0000012345J", spec, rules)
	require.NoError(t, err)
	d := v.(decimal.Decimal)
	assert.True(t, d.IsNegative())
	// digits 0000012345 + decoded digit 1 = 00000123451, implied places 2
	expected := decimal.New(123451, -2).Neg()
	assert.True(t, expected.Equal(d), "got %s want %s", d, expected)
}

func TestNumericParser_AllSpacesNull(t *testing.T) {
	p := numericParser{}
	spec := layout.FieldSpec{Name: "amt"}
	rules := layout.ParsingRules{Numeric: layout.NumericRules{TreatAllSpacesAsNull: true}}

	v, err := p.Parse("     ", spec, rules)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNumericParser_AllZerosBehavior(t *testing.T) {
	p := numericParser{}
	spec := layout.FieldSpec{Name: "amt"}

	rulesNull := layout.ParsingRules{Numeric: layout.NumericRules{AllZerosBehavior: layout.AllZerosNull}}
	v, err := p.Parse("00000", spec, rulesNull)
	require.NoError(t, err)
	assert.Nil(t, v)

	rulesZero := layout.ParsingRules{Numeric: layout.NumericRules{AllZerosBehavior: layout.AllZerosZero}}
	v, err = p.Parse("00000", spec, rulesZero)
	require.NoError(t, err)
	assert.True(t, v.(decimal.Decimal).IsZero())
}

func TestNumericParser_DecimalLiteral(t *testing.T) {
	p := numericParser{}
	spec := layout.FieldSpec{Name: "amt"}
	rules := layout.ParsingRules{}

	v, err := p.Parse("-123.45", spec, rules)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("-123.45").Equal(v.(decimal.Decimal)))
}

func TestNumericParser_ImpliedPlacesInvariant(t *testing.T) {
	p := numericParser{}
	for _, digits := range []string{"1", "42", "00123", "999999"} {
		for _, places := range []int{0, 1, 2, 4} {
			spec := layout.FieldSpec{Name: "n"}
			rules := layout.ParsingRules{Numeric: layout.NumericRules{DefaultImpliedDecimalPlaces: places}}
			v, err := p.Parse(digits, spec, rules)
			require.NoError(t, err)

			n, _ := strconv.ParseInt(digits, 10, 64)
			var want decimal.Decimal
			if places > 0 {
				want = decimal.New(n, -int32(places))
			} else {
				want = decimal.New(n, 0)
			}
			assert.True(t, want.Equal(v.(decimal.Decimal)), "digits=%s places=%d got=%s want=%s", digits, places, v, want)
		}
	}
}
