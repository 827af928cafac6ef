package fwparse

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// PropertySetter writes one parsed value into one dotted property path on
// instance. instance must be a pointer to the entity the setter was built
// for.
type PropertySetter func(instance any, value any) error

type setterKey struct {
	t    reflect.Type
	path string
}

var setterCache sync.Map // setterKey -> PropertySetter

// GetSetter returns (building and caching, if necessary) a setter for the
// dotted path on type t. Building walks each segment by case-insensitive
// public property lookup: every non-terminal segment must be a readable
// struct (or pointer-to-struct) field, and the terminal segment must be a
// settable field. The cache uses insert-if-absent semantics so concurrent
// callers building the same (type, path) pair race harmlessly.
func GetSetter(t reflect.Type, path string) (PropertySetter, error) {
	key := setterKey{t: t, path: path}
	if cached, ok := setterCache.Load(key); ok {
		return cached.(PropertySetter), nil
	}

	setter, err := buildSetter(t, path)
	if err != nil {
		return nil, err
	}

	actual, _ := setterCache.LoadOrStore(key, setter)
	return actual.(PropertySetter), nil
}

func buildSetter(t reflect.Type, path string) (PropertySetter, error) {
	structType := t
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, newConfigError("property path %q: type %s is not a struct", path, t)
	}

	segments := strings.Split(path, ".")
	type step struct {
		index     int
		fieldName string
		pointer   bool
	}

	cur := structType
	steps := make([]step, 0, len(segments))
	for i, seg := range segments {
		field, ok := findFieldCaseInsensitive(cur, seg)
		if !ok {
			return nil, newConfigError("property path %q: no public field matching %q on %s", path, seg, cur)
		}
		isLast := i == len(segments)-1
		fieldType := field.Type
		isPointer := fieldType.Kind() == reflect.Pointer
		if !isLast {
			next := fieldType
			if isPointer {
				next = fieldType.Elem()
			}
			if next.Kind() != reflect.Struct {
				return nil, newConfigError("property path %q: intermediate field %q on %s is not a struct", path, seg, cur)
			}
			cur = next
		}
		steps = append(steps, step{index: field.Index[0], fieldName: field.Name, pointer: isPointer})
	}

	setter := PropertySetter(func(instance any, value any) error {
		rv := reflect.ValueOf(instance)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return newConfigError("property path %q: instance must be a non-nil pointer", path)
		}
		cur := rv.Elem()
		for i, st := range steps {
			field := cur.Field(st.index)
			isLast := i == len(steps)-1
			if isLast {
				return coerceAndSet(field, value)
			}
			if st.pointer {
				if field.IsNil() {
					field.Set(reflect.New(field.Type().Elem()))
				}
				cur = field.Elem()
			} else {
				cur = field
			}
		}
		return nil
	})

	return setter, nil
}

func findFieldCaseInsensitive(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func coerceAndSet(field reflect.Value, value any) error {
	if !field.CanSet() {
		return newConfigError("field %s is not settable", field.Type())
	}
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	rv := reflect.ValueOf(value)
	target := field.Type()

	if target.Kind() == reflect.Pointer {
		elemVal, err := coerceValue(rv, target.Elem())
		if err != nil {
			return err
		}
		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(elemVal)
		field.Set(ptr)
		return nil
	}

	coerced, err := coerceValue(rv, target)
	if err != nil {
		return err
	}
	field.Set(coerced)
	return nil
}

func coerceValue(rv reflect.Value, target reflect.Type) (reflect.Value, error) {
	if rv.Type().AssignableTo(target) {
		return rv, nil
	}

	if rv.Type() == decimalType {
		d := rv.Interface().(decimal.Decimal)
		switch target.Kind() {
		case reflect.Float32, reflect.Float64:
			return reflect.ValueOf(d.InexactFloat64()).Convert(target), nil
		case reflect.String:
			return reflect.ValueOf(d.String()).Convert(target), nil
		}
	}

	switch target.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if rv.Type().ConvertibleTo(target) {
			return rv.Convert(target), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", rv.Type(), target)
}
