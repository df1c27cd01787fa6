// File: fields.go
// Title: Structured Log Fields
// Description: Fields type and helpers, converted to zap fields in key order
//              so output is stable.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation as part of entry.go
// - 2026-10-18 v1.0.0: Split out, zap conversion

package log

import (
	"sort"

	"go.uber.org/zap"
)

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// String creates a string field
func String(key, value string) Fields {
	return Fields{key: value}
}

// Float64 creates a float field
func Float64(key string, value float64) Fields {
	return Fields{key: value}
}

// Int creates an int field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Merge merges other into a copy of f
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// zapFields converts the fields to zap fields sorted by key
func (f Fields) zapFields() []zap.Field {
	if len(f) == 0 {
		return nil
	}

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}

// mergeAll flattens a variadic list of Fields
func mergeAll(fields []Fields) Fields {
	switch len(fields) {
	case 0:
		return nil
	case 1:
		return fields[0]
	}

	result := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			result[k] = v
		}
	}
	return result
}
