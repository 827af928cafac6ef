package fwparse

import (
	"strconv"
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
	"github.com/shopspring/decimal"
)

type numericParser struct{}

func (numericParser) Parse(raw string, spec layout.FieldSpec, rules layout.ParsingRules) (any, error) {
	nr := rules.Numeric

	treatAllSpacesAsNull := optBool(spec, "treatAllSpacesAsNull", nr.TreatAllSpacesAsNull)
	allowOverpunch := optBool(spec, "allowOverpunch", nr.AllowOverpunch)
	allZerosBehavior := layout.AllZerosBehavior(spec.Option("allZerosBehavior", string(nr.AllZerosBehavior)))
	impliedPlaces := optInt(spec, "impliedDecimalPlaces", nr.DefaultImpliedDecimalPlaces)

	if isAllSpaces(raw) && treatAllSpacesAsNull {
		return nil, nil
	}
	if isAllZeros(raw) {
		if allZerosBehavior == layout.AllZerosZero {
			return decimal.Zero, nil
		}
		return nil, nil
	}

	remaining := collapseSpaces(raw)
	if remaining == "" {
		return nil, nil
	}

	sign := 1
	switch remaining[0] {
	case '+':
		remaining = remaining[1:]
	case '-':
		sign = -1
		remaining = remaining[1:]
	}

	if allowOverpunch && len(remaining) > 0 {
		last := remaining[len(remaining)-1]
		if digit, osign, ok := DecodeOverpunch(last); ok {
			remaining = remaining[:len(remaining)-1] + strconv.Itoa(digit)
			sign *= osign
		}
	}

	signDec := decimal.NewFromInt(int64(sign))

	if strings.Contains(remaining, ".") {
		d, err := decimal.NewFromString(remaining)
		if err != nil {
			return nil, newRecordError(spec.Name, raw, err)
		}
		return d.Mul(signDec), nil
	}

	digitsOnly := keepDigits(remaining)
	if digitsOnly == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(digitsOnly, 10, 64)
	if err != nil {
		return nil, newRecordError(spec.Name, raw, err)
	}

	var result decimal.Decimal
	if impliedPlaces > 0 {
		result = decimal.New(n, -int32(impliedPlaces))
	} else {
		result = decimal.New(n, 0)
	}
	return result.Mul(signDec), nil
}

func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

func optBool(spec layout.FieldSpec, key string, def bool) bool {
	v, ok := spec.Options[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func optInt(spec layout.FieldSpec, key string, def int) int {
	v, ok := spec.Options[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
