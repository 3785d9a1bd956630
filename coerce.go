package brainmem

import (
	"reflect"
	"strings"
)

// CoerceBool maps loosely-typed flags onto booleans: "true", "1" and numeric 1
// become true; "false", "0" and numeric 0 become false. Strings are trimmed
// first. Anything else is returned unchanged.
func CoerceBool(v any) any {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.TrimSpace(x) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch rv.Int() {
		case 1:
			return true
		case 0:
			return false
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch rv.Uint() {
		case 1:
			return true
		case 0:
			return false
		}
	case reflect.Float32, reflect.Float64:
		switch rv.Float() {
		case 1:
			return true
		case 0:
			return false
		}
	}
	return v
}

// asBool coerces v and insists on a boolean outcome.
func asBool(v any) (bool, error) {
	b, ok := CoerceBool(v).(bool)
	if !ok {
		return false, invalidArg("flag %v (%T) is not a boolean", v, v)
	}
	return b, nil
}
