package fwparse

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string
}

type person struct {
	Name      string
	Age       int64
	Balance   float64
	Birthdate time.Time
	BirthdatePtr *time.Time
	Home      address
}

func TestGetSetter_TopLevelField(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "Name")
	require.NoError(t, err)

	p := &person{}
	require.NoError(t, setter(p, "Alice"))
	assert.Equal(t, "Alice", p.Name)
}

func TestGetSetter_CaseInsensitiveLookup(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "name")
	require.NoError(t, err)

	p := &person{}
	require.NoError(t, setter(p, "Bob"))
	assert.Equal(t, "Bob", p.Name)
}

func TestGetSetter_NestedPath(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "Home.City")
	require.NoError(t, err)

	p := &person{}
	require.NoError(t, setter(p, "Oslo"))
	assert.Equal(t, "Oslo", p.Home.City)
}

func TestGetSetter_NilSetsZeroValue(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "Age")
	require.NoError(t, err)

	p := &person{Age: 99}
	require.NoError(t, setter(p, nil))
	assert.Equal(t, int64(0), p.Age)
}

func TestGetSetter_NilOnPointerField(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "BirthdatePtr")
	require.NoError(t, err)

	now := time.Now()
	p := &person{BirthdatePtr: &now}
	require.NoError(t, setter(p, nil))
	assert.Nil(t, p.BirthdatePtr)
}

func TestGetSetter_ConvertsNumericKinds(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "Age")
	require.NoError(t, err)

	p := &person{}
	require.NoError(t, setter(p, int32(42)))
	assert.Equal(t, int64(42), p.Age)
}

func TestGetSetter_WrapsInPointer(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(person{}), "BirthdatePtr")
	require.NoError(t, err)

	want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	p := &person{}
	require.NoError(t, setter(p, want))
	require.NotNil(t, p.BirthdatePtr)
	assert.Equal(t, want, *p.BirthdatePtr)
}

func TestGetSetter_UnknownFieldIsConfigError(t *testing.T) {
	_, err := GetSetter(reflect.TypeOf(person{}), "DoesNotExist")
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestGetSetter_CachedAndConcurrentSafe(t *testing.T) {
	t_ := reflect.TypeOf(person{})

	var wg sync.WaitGroup
	results := make([]any, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			setter, err := GetSetter(t_, "Name")
			require.NoError(t, err)
			results[i] = setter
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		p1, p2 := &person{}, &person{}
		results[0].(PropertySetter)(p1, "x")
		results[i].(PropertySetter)(p2, "x")
		assert.Equal(t, p1.Name, p2.Name)
	}
}
