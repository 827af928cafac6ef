package fwparse

import (
	"fmt"
	"strconv"

	"github.com/cobolimport/flatfileimport/layout"
)

type integerParser struct{}

func (integerParser) Parse(raw string, spec layout.FieldSpec, rules layout.ParsingRules) (any, error) {
	ir := rules.Integer

	treatAllSpacesAsNull := optBool(spec, "treatAllSpacesAsNull", ir.TreatAllSpacesAsNull)
	allZerosBehavior := layout.AllZerosBehavior(spec.Option("allZerosBehavior", string(ir.AllZerosBehavior)))

	if isAllSpaces(raw) && treatAllSpacesAsNull {
		return nil, nil
	}
	if isAllZeros(raw) {
		if allZerosBehavior == layout.AllZerosZero {
			return int64(0), nil
		}
		return nil, nil
	}

	remaining := collapseSpaces(raw)
	if remaining == "" {
		return nil, nil
	}

	sign := int64(1)
	switch remaining[0] {
	case '+':
		remaining = remaining[1:]
	case '-':
		sign = -1
		remaining = remaining[1:]
	}

	digitsOnly := keepDigits(remaining)
	if digitsOnly == "" {
		return nil, nil
	}
	if len(digitsOnly) > 11 {
		return nil, newRecordError(spec.Name, raw, fmt.Errorf("integer field has %d digits, maximum is 11", len(digitsOnly)))
	}

	n, err := strconv.ParseInt(digitsOnly, 10, 64)
	if err != nil {
		return nil, newRecordError(spec.Name, raw, err)
	}

	return sign * n, nil
}
