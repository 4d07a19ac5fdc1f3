// Package value holds coercion helpers for generic value trees. A tree is
// built from map[string]any, []any, string, bool, nil and one of the number
// representations below; helpers report shape mismatches with a plain bool so
// callers decide how to position the error.
package value

import (
	"encoding/json"
	"fmt"
	"math"
)

// Object reports v as a string-keyed object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Array reports v as an array.
func Array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// String reports v as a string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// IsNumber reports whether v is any of the supported number representations:
// json.Number (JSON sources in UseNumber mode), float64, or the int variants
// the YAML decoder produces.
func IsNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, int, int64, uint64:
		return true
	}
	return false
}

// Int64 reports v as an integer. Numbers with a fractional part are numbers
// but not integers, so they return false here while IsNumber returns true.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// Float64 reports v as a floating-point number.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Uint32 reports v as an integer in the uint32 range.
func Uint32(v any) (uint32, bool) {
	i, ok := Int64(v)
	if !ok || i < 0 || i > math.MaxUint32 {
		return 0, false
	}
	return uint32(i), true
}

// NonStringKeyError reports a mapping key that is not a string, so the
// source layer can name the offending key in its issue.
type NonStringKeyError struct{ Key any }

func (e *NonStringKeyError) Error() string {
	return fmt.Sprintf("non-string mapping key %v", e.Key)
}

// Normalize converts YAML node trees into the canonical value-tree shapes:
// map[any]any becomes map[string]any, and nested containers are normalized
// recursively. A mapping with a non-string key fails with
// NonStringKeyError.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			nv, err := Normalize(val)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, &NonStringKeyError{Key: k}
			}
			nv, err := Normalize(val)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			nv, err := Normalize(val)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
