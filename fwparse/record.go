package fwparse

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cobolimport/flatfileimport/layout"
)

// ParseSingle constructs a new *entityType, applies every header field in
// lay, and returns it. Occurs groups in lay are ignored. A RecordError
// aborts the line and discards the partially built entity; a ConfigError
// indicates the layout itself is unusable and should have been caught at
// load time.
func ParseSingle(line string, entityType reflect.Type, lay layout.Layout, ctx ImportContext) (any, error) {
	instance := reflect.New(entityType).Interface()
	if err := applyFields(instance, entityType, lay.HeaderFields, line, lay.Rules, ctx); err != nil {
		return nil, err
	}
	return instance, nil
}

// ParseGraph constructs a new *parentType, applies header fields, then
// expands every occurs group in lay into child entities appended to the
// parent's collections. reg resolves each group's childEntity name to a
// concrete type.
func ParseGraph(line string, parentType reflect.Type, lay layout.Layout, ctx ImportContext, reg *Registry) (any, error) {
	instance := reflect.New(parentType).Interface()
	if err := applyFields(instance, parentType, lay.HeaderFields, line, lay.Rules, ctx); err != nil {
		return nil, err
	}

	for _, group := range lay.OccursGroups {
		if err := expandOccursGroup(instance, parentType, group, line, lay.Rules, ctx, reg); err != nil {
			return nil, err
		}
	}

	return instance, nil
}

func applyFields(instance any, entityType reflect.Type, fields []layout.FieldSpec, line string, rules layout.ParsingRules, ctx ImportContext) error {
	for _, spec := range fields {
		raw, fixedWidth, err := ResolveValue(spec, line, ctx)
		if err != nil {
			return err
		}

		value := raw
		if fixedWidth {
			rawStr, _ := raw.(string)
			parser, err := NewFieldParser(spec.Type)
			if err != nil {
				return err
			}
			value, err = parser.Parse(rawStr, spec, rules)
			if err != nil {
				return err
			}
		}

		setter, err := GetSetter(entityType, spec.Target)
		if err != nil {
			return err
		}
		if err := setter(instance, value); err != nil {
			var cfgErr *ConfigError
			if errors.As(err, &cfgErr) {
				return err
			}
			return newRecordError(spec.Name, fmt.Sprint(raw), err)
		}
	}
	return nil
}

func expandOccursGroup(parent any, parentType reflect.Type, group layout.OccursGroupSpec, line string, rules layout.ParsingRules, ctx ImportContext, reg *Registry) error {
	childType, err := reg.Lookup(group.ChildEntity)
	if err != nil {
		return err
	}

	adder, err := GetAdder(parentType, group.ParentCollectionTarget, childType)
	if err != nil {
		return err
	}

	groupBlock := Slice(line, group.StartIndex0, group.Length)

	itemsToParse, err := resolveItemCount(parent, group)
	if err != nil {
		return err
	}

	boundedLen := group.ItemLength * group.MaxItems
	if boundedLen > len(groupBlock) {
		boundedLen = len(groupBlock)
	}

	for i := 0; i < itemsToParse; i++ {
		offset := i * group.ItemLength
		if offset >= boundedLen {
			break
		}
		itemRaw := Slice(groupBlock, offset, group.ItemLength)

		if group.TerminationMode == layout.TerminationPadding && isAllSpaces(itemRaw) {
			break
		}

		child := reflect.New(childType).Interface()
		if err := applyFields(child, childType, group.ItemFields, itemRaw, rules, ctx); err != nil {
			return err
		}

		if group.Sequence.Enabled {
			seqValue := group.Sequence.Start + int64(i)*group.Sequence.Step
			setter, err := GetSetter(childType, group.Sequence.Target)
			if err != nil {
				return err
			}
			if err := setter(child, seqValue); err != nil {
				return err
			}
		}

		if err := adder(parent, child); err != nil {
			return err
		}
	}

	return nil
}

func resolveItemCount(parent any, group layout.OccursGroupSpec) (int, error) {
	if group.TerminationMode != layout.TerminationCount {
		return group.MaxItems, nil
	}

	raw, err := getFieldValue(parent, group.CountFieldTarget)
	if err != nil {
		return 0, err
	}

	n, err := coerceCount(raw)
	if err != nil {
		return 0, newConfigError("occurs group %q: countFieldTarget %q: %v", group.Name, group.CountFieldTarget, err)
	}

	if n < 0 {
		n = 0
	}
	if n > group.MaxItems {
		n = group.MaxItems
	}
	return n, nil
}

func coerceCount(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int8:
		return int(val), nil
	case int16:
		return int(val), nil
	case int32:
		return int(val), nil
	case int64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("not a parsable integer: %q", val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported count field type %T", v)
	}
}

// getFieldValue reads a dotted path off instance, for the one case the
// core needs to read rather than write: a count-terminated occurs group's
// countFieldTarget, which header-field parsing must already have
// populated.
func getFieldValue(instance any, path string) (any, error) {
	rv := reflect.ValueOf(instance)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, newConfigError("property path %q: instance is nil", path)
		}
		rv = rv.Elem()
	}

	cur := rv
	for _, seg := range strings.Split(path, ".") {
		if cur.Kind() == reflect.Pointer {
			if cur.IsNil() {
				return nil, newConfigError("property path %q: intermediate value is nil", path)
			}
			cur = cur.Elem()
		}
		field, ok := findFieldCaseInsensitive(cur.Type(), seg)
		if !ok {
			return nil, newConfigError("property path %q: no public field matching %q on %s", path, seg, cur.Type())
		}
		cur = cur.Field(field.Index[0])
	}
	return cur.Interface(), nil
}
