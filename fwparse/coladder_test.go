package fwparse

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderLine struct {
	Code string
}

type sliceOrder struct {
	Lines []orderLine
}

type lineBucket struct {
	items []orderLine
}

func (b *lineBucket) Add(item orderLine) {
	b.items = append(b.items, item)
}

type methodOrder struct {
	Lines lineBucket
}

func TestGetAdder_SliceField(t *testing.T) {
	adder, err := GetAdder(reflect.TypeOf(sliceOrder{}), "Lines", reflect.TypeOf(orderLine{}))
	require.NoError(t, err)

	o := &sliceOrder{}
	require.NoError(t, adder(o, orderLine{Code: "AAA"}))
	require.NoError(t, adder(o, orderLine{Code: "BBB"}))

	require.Len(t, o.Lines, 2)
	assert.Equal(t, "AAA", o.Lines[0].Code)
	assert.Equal(t, "BBB", o.Lines[1].Code)
}

func TestGetAdder_AddMethodField(t *testing.T) {
	adder, err := GetAdder(reflect.TypeOf(methodOrder{}), "Lines", reflect.TypeOf(orderLine{}))
	require.NoError(t, err)

	o := &methodOrder{}
	require.NoError(t, adder(o, orderLine{Code: "CCC"}))

	require.Len(t, o.Lines.items, 1)
	assert.Equal(t, "CCC", o.Lines.items[0].Code)
}

func TestGetAdder_UnknownPathIsConfigError(t *testing.T) {
	_, err := GetAdder(reflect.TypeOf(sliceOrder{}), "Nope", reflect.TypeOf(orderLine{}))
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
