// Package reflection wraps the reflect look-ups that callers otherwise repeat: type names,
// nil checks that see through interfaces, and struct field and tag queries.
package reflection

import (
	"reflect"
)

// TypeName returns the name of v's dynamic type, e.g. "int", "*bytes.Buffer" or "[]string".
// A nil interface yields "<nil>".
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// IsNil reports whether v is a nil interface or holds a nil pointer, map, slice, channel,
// function or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsZero reports whether v is nil or the zero value of its type.
func IsZero(v any) bool {
	return v == nil || reflect.ValueOf(v).IsZero()
}

// FieldNames returns the exported field names of a struct or pointer to struct, in declaration
// order. Other kinds yield nil.
func FieldNames(v any) []string {
	t, ok := structType(v)
	if !ok {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if field := t.Field(i); field.IsExported() {
			names = append(names, field.Name)
		}
	}

	return names
}

// Tag looks up key in the struct tag of the named field.
func Tag(v any, field, key string) (string, bool) {
	t, ok := structType(v)
	if !ok {
		return "", false
	}

	f, ok := t.FieldByName(field)
	if !ok {
		return "", false
	}

	return f.Tag.Lookup(key)
}

func structType(v any) (reflect.Type, bool) {
	if v == nil {
		return nil, false
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t, t.Kind() == reflect.Struct
}
