package fwparse

import (
	"reflect"
	"strings"
	"sync"
)

// CollectionAdder appends one parsed child entity onto the collection
// named by a dotted path on parent. parent must be a pointer to the
// parent entity; child is the already-constructed item.
type CollectionAdder func(parent any, child any) error

type adderKey struct {
	parentType reflect.Type
	path       string
	childType  reflect.Type
}

var adderCache sync.Map // adderKey -> CollectionAdder

// GetAdder returns (building and caching, if necessary) an adder for the
// collection at path on parentType, appending values of childType. The
// terminal collection may be a Go slice field (appended to via reflection)
// or any addressable value exposing an Add(childType)-shaped method -
// spec.md 9 notes the collection adder "reduces to an append function over
// a typed collection handle" and both shapes satisfy that.
func GetAdder(parentType reflect.Type, path string, childType reflect.Type) (CollectionAdder, error) {
	key := adderKey{parentType: parentType, path: path, childType: childType}
	if cached, ok := adderCache.Load(key); ok {
		return cached.(CollectionAdder), nil
	}

	adder, err := buildAdder(parentType, path, childType)
	if err != nil {
		return nil, err
	}

	actual, _ := adderCache.LoadOrStore(key, adder)
	return actual.(CollectionAdder), nil
}

func buildAdder(parentType reflect.Type, path string, childType reflect.Type) (CollectionAdder, error) {
	structType := parentType
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, newConfigError("collection path %q: type %s is not a struct", path, parentType)
	}

	segments := strings.Split(path, ".")
	cur := structType
	indices := make([]int, 0, len(segments))
	pointerAt := make([]bool, 0, len(segments))
	var terminalField reflect.StructField

	for i, seg := range segments {
		field, ok := findFieldCaseInsensitive(cur, seg)
		if !ok {
			return nil, newConfigError("collection path %q: no public field matching %q on %s", path, seg, cur)
		}
		indices = append(indices, field.Index[0])
		isPointer := field.Type.Kind() == reflect.Pointer
		pointerAt = append(pointerAt, isPointer)

		isLast := i == len(segments)-1
		if isLast {
			terminalField = field
			break
		}
		next := field.Type
		if isPointer {
			next = next.Elem()
		}
		if next.Kind() != reflect.Struct {
			return nil, newConfigError("collection path %q: intermediate field %q on %s is not a struct", path, seg, cur)
		}
		cur = next
	}

	appendFn, err := resolveAppend(terminalField.Type, childType, path)
	if err != nil {
		return nil, err
	}

	adder := CollectionAdder(func(parent any, child any) error {
		rv := reflect.ValueOf(parent)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return newConfigError("collection path %q: parent must be a non-nil pointer", path)
		}
		cur := rv.Elem()
		for i, idx := range indices {
			field := cur.Field(idx)
			if i == len(indices)-1 {
				return appendFn(field, reflect.ValueOf(child))
			}
			if pointerAt[i] {
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

	return adder, nil
}

// resolveAppend builds the function that appends a child value onto the
// terminal collection field, given its static type.
func resolveAppend(collectionType, childType reflect.Type, path string) (func(collection, child reflect.Value) error, error) {
	if collectionType.Kind() == reflect.Slice {
		elemType := collectionType.Elem()
		if !childType.AssignableTo(elemType) && !childType.ConvertibleTo(elemType) {
			return nil, newConfigError("collection path %q: cannot append %s onto %s", path, childType, collectionType)
		}
		return func(collection, child reflect.Value) error {
			if !child.Type().AssignableTo(elemType) {
				child = child.Convert(elemType)
			}
			collection.Set(reflect.Append(collection, child))
			return nil
		}, nil
	}

	ptrType := reflect.PointerTo(collectionType)
	if addMethod, ok := ptrType.MethodByName("Add"); ok && addMethod.Type.NumIn() == 2 {
		paramType := addMethod.Type.In(1)
		return func(collection, child reflect.Value) error {
			if !child.Type().AssignableTo(paramType) {
				if !child.Type().ConvertibleTo(paramType) {
					return newConfigError("collection path %q: cannot pass %s to Add(%s)", path, child.Type(), paramType)
				}
				child = child.Convert(paramType)
			}
			collection.Addr().MethodByName("Add").Call([]reflect.Value{child})
			return nil
		}, nil
	}

	return nil, newConfigError("collection path %q: type %s has neither a slice field nor an Add method", path, collectionType)
}
