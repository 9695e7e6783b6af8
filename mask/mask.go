// Package mask provides functionality for masking sensitive fields in values
// before logging or other debugging tasks.
//
// Struct fields tagged with `mask:"true"` have their values replaced in the
// output. The package is used by the store logging middleware to render
// dispatched action payloads without leaking credentials or tokens.
package mask

import (
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	tagName = "mask"

	masked = "***masked***"
)

// Value renders v for logging. Structs and pointers to structs become an
// ordered map of their exported fields with sensitive values masked; any
// other value is returned unchanged.
//
// Field names follow tag priority: json tag > yaml tag > struct field name.
// Fields tagged json:"-" or yaml:"-" are omitted. Nested structs are
// flattened with dotted keys.
func Value(v any) any {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return v
	}

	return structToOrdMap(val, "")
}

func structToOrdMap(val reflect.Value, prefix string) *orderedmap.OrderedMap[string, any] {
	om := orderedmap.New[string, any]()
	typ := val.Type()

	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		name, skip := fieldName(fieldType)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case shouldMask(fieldType):
			om.Set(name, maskValue(field))
		case isStructLike(field):
			nested := structToOrdMap(deref(field), name)
			for pair := nested.Oldest(); pair != nil; pair = pair.Next() {
				om.Set(pair.Key, pair.Value)
			}
		default:
			om.Set(name, field.Interface())
		}
	}

	return om
}

func shouldMask(field reflect.StructField) bool {
	return strings.EqualFold(field.Tag.Get(tagName), "true")
}

func isStructLike(val reflect.Value) bool {
	if val.Kind() == reflect.Pointer {
		return !val.IsNil() && val.Elem().Kind() == reflect.Struct
	}
	return val.Kind() == reflect.Struct
}

func deref(val reflect.Value) reflect.Value {
	if val.Kind() == reflect.Pointer {
		return val.Elem()
	}
	return val
}

func maskValue(val reflect.Value) any {
	switch val.Kind() { //nolint:exhaustive // remaining kinds handled below
	case reflect.Pointer:
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	case reflect.Slice, reflect.Map:
		if val.IsNil() {
			return nil
		}
	}

	// Zero values carry no information worth hiding.
	if val.IsZero() {
		return val.Interface()
	}

	return masked
}

// fieldName extracts the log key for a struct field. Returns skip=true for
// fields excluded via json:"-" or yaml:"-".
func fieldName(field reflect.StructField) (name string, skip bool) {
	for _, tag := range []string{"json", "yaml"} {
		value, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		if value == "-" {
			return "", true
		}
		if idx := strings.Index(value, ","); idx != -1 {
			value = value[:idx]
		}
		if value != "" {
			return value, false
		}
	}
	return field.Name, false
}
