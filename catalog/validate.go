package catalog

import (
	"math"
	"reflect"
)

// matchesType reports whether a runtime value satisfies a declared field
// type under JSON decoding conventions: numbers arrive as float64, objects
// as map[string]any, arrays as []any. Integral float64 values satisfy
// TypeInt because encoding/json does not distinguish 10 from 10.0. No other
// conversions are accepted.
func matchesType(value any, t FieldType) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInt:
		switch v := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			return v == math.Trunc(v)
		}
		return false
	case TypeFloat:
		switch value.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case TypeBool:
		_, ok := value.(bool)
		return ok
	case TypeObject:
		_, ok := value.(map[string]any)
		return ok
	case TypeArray:
		kind := reflect.ValueOf(value).Kind()
		return kind == reflect.Slice || kind == reflect.Array
	}
	return false
}
