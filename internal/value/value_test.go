package value

import (
	"encoding/json"
	"testing"
)

func TestInt64_NumberRepresentations(t *testing.T) {
	cases := []struct {
		in   any
		want int64
		ok   bool
	}{
		{json.Number("4"), 4, true},
		{json.Number("4.5"), 0, false},
		{json.Number("x"), 0, false},
		{float64(6), 6, true},
		{float64(6.5), 0, false},
		{int(3), 3, true},
		{int64(-2), -2, true},
		{uint64(9), 9, true},
		{"4", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := Int64(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Int64(%v) = %d,%v; want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestUint32_Range(t *testing.T) {
	if _, ok := Uint32(int64(-1)); ok {
		t.Fatalf("negative accepted")
	}
	if _, ok := Uint32(int64(1 << 33)); ok {
		t.Fatalf("out-of-range accepted")
	}
	if u, ok := Uint32(json.Number("7")); !ok || u != 7 {
		t.Fatalf("Uint32 = %d,%v", u, ok)
	}
}

func TestIsNumber(t *testing.T) {
	for _, v := range []any{json.Number("1"), float64(1), int(1), int64(1), uint64(1)} {
		if !IsNumber(v) {
			t.Fatalf("IsNumber(%T) = false", v)
		}
	}
	for _, v := range []any{"1", true, nil, []any{}} {
		if IsNumber(v) {
			t.Fatalf("IsNumber(%T) = true", v)
		}
	}
}

func TestNormalize_YAMLMapKeys(t *testing.T) {
	in := map[any]any{
		"a": map[any]any{"b": []any{1, map[any]any{"c": 2}}},
	}
	norm, err := Normalize(in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	out, ok := norm.(map[string]any)
	if !ok {
		t.Fatalf("normalized root = %T", norm)
	}
	inner, ok := out["a"].(map[string]any)
	if !ok {
		t.Fatalf("nested map not normalized: %T", out["a"])
	}
	arr, ok := inner["b"].([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("array not preserved: %v", inner["b"])
	}
	if _, ok := arr[1].(map[string]any); !ok {
		t.Fatalf("map inside array not normalized: %T", arr[1])
	}
}

func TestNormalize_NonStringKeyNamesOffender(t *testing.T) {
	for _, in := range []any{
		map[any]any{1: "x"},
		map[any]any{"a": []any{map[any]any{true: "y"}}},
	} {
		_, err := Normalize(in)
		if err == nil {
			t.Fatalf("Normalize(%v): expected error", in)
		}
		nk, ok := err.(*NonStringKeyError)
		if !ok {
			t.Fatalf("error = %T, want *NonStringKeyError", err)
		}
		if nk.Key == nil {
			t.Fatalf("offending key not recorded")
		}
	}
}
