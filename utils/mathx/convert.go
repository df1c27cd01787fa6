// File: convert.go
// Title: Numeric Conversion of Decoded Data
// Description: Converts values produced by YAML and JSON decoders, or by
//              callers holding interface values, into float64.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package mathx

import (
	"encoding/json"
	"reflect"
)

// ToFloat converts any Go integer or float kind, or a json.Number, to
// float64. Other types, strings included, report false. The result may be
// non-finite; check it with IsUsefulNumber.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		n, err := x.Float64()
		return n, err == nil
	default:
		return 0, false
	}
}

// IsCollection reports whether v is a slice or an array
func IsCollection(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// ToFloats converts a slice or array of numbers to []float64. ok is false
// when v is not a collection. bad is the index of the first element that
// is not a finite number, or -1 when every element converted.
func ToFloats(v any) (values []float64, bad int, ok bool) {
	if fs, isFloats := v.([]float64); isFloats {
		for i, f := range fs {
			if !IsUsefulNumber(f) {
				return nil, i, true
			}
		}
		return fs, -1, true
	}

	if !IsCollection(v) {
		return nil, -1, false
	}

	rv := reflect.ValueOf(v)
	values = make([]float64, rv.Len())
	for i := range values {
		f, isNumber := ToFloat(rv.Index(i).Interface())
		if !isNumber || !IsUsefulNumber(f) {
			return nil, i, true
		}
		values[i] = f
	}
	return values, -1, true
}
