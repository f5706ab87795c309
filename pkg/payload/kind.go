package payload

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strings"
)

// Payload is the decoded input tree: field name to value.
type Payload map[string]any

// Kind classifies a payload value.
type Kind uint8

const (
	Unknown Kind = iota
	Null
	Integer
	Float
	String
	Boolean
	Array
	Object
)

var kindNames = [...]string{
	Unknown: "unknown",
	Null:    "null",
	Integer: "integer",
	Float:   "float",
	String:  "string",
	Boolean: "boolean",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Unknown]
}

// KindOf reports the kind of v. A json.Number is an Integer when its literal
// has no fraction or exponent, whatever its magnitude.
func KindOf(v any) Kind {
	switch val := v.(type) {
	case nil:
		return Null
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Integer
	case float32, float64:
		return Float
	case *big.Int:
		if val == nil {
			return Null
		}
		return Integer
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return Integer
		}
		if _, ok := bigInteger(val); ok {
			return Integer
		}
		if _, err := val.Float64(); err == nil {
			return Float
		}
		return Unknown
	case string:
		return String
	case bool:
		return Boolean
	case []any:
		return Array
	case map[string]any, Payload:
		return Object
	}

	// Typed slices and maps built in Go code rather than decoded.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Unknown
		}
		return Array
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return Object
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return Null
		}
		return KindOf(rv.Elem().Interface())
	}
	return Unknown
}

// AsObject returns v as a Payload when it is an object value.
func AsObject(v any) (Payload, bool) {
	switch val := v.(type) {
	case Payload:
		return val, true
	case map[string]any:
		return Payload(val), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	obj := make(Payload, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		obj[iter.Key().String()] = iter.Value().Interface()
	}
	return obj, true
}

// AsFloat returns the numeric value of v for Integer and Float kinds.
func AsFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case *big.Int:
		if val == nil {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(val).Float64()
		return f, true
	case json.Number:
		if b, ok := bigInteger(val); ok {
			f, _ := new(big.Float).SetInt(b).Float64()
			return f, true
		}
		f, err := val.Float64()
		return f, err == nil
	}
	return 0, false
}

// bigInteger parses an integer literal of any size. Literals with a
// fraction or an exponent are not integers.
func bigInteger(n json.Number) (*big.Int, bool) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// Len returns the number of elements of an Array value.
func Len(v any) (int, bool) {
	if arr, ok := v.([]any); ok {
		return len(arr), true
	}
	if KindOf(v) != Array {
		return 0, false
	}
	return reflect.ValueOf(v).Len(), true
}
