package keeper

import (
	"encoding/json"
	"math"
	"reflect"
)

// IsPresent reports whether value is worth storing. Absent values are
// nil (including nil pointers, maps, slices, interfaces, funcs and chans),
// false, numeric zero, NaN, the empty string and a zero json.Number.
// Empty but non-nil maps and slices are present.
func IsPresent(value interface{}) bool {
	if value == nil {
		return false
	}
	if number, ok := value.(json.Number); ok {
		f, err := number.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return v.Complex() != 0
	case reflect.String:
		return v.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !v.IsNil()
	}
	return true
}

// hasNoKeys reports whether value has no enumerable keys. Maps, slices,
// arrays and strings have one key per element, structs one per field
// encoded as a JSON object key; every other value has none.
func hasNoKeys(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return v.Len() == 0
	case reflect.Struct:
		return !hasJSONFields(v.Type())
	}
	return true
}

func hasJSONFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("json") == "-" {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if hasJSONFields(field.Type) {
				return true
			}
			continue
		}
		if field.PkgPath == "" {
			return true
		}
	}
	return false
}
