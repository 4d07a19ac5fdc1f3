package gltf_test

import (
	"context"
	"strings"
	"testing"

	gltf "github.com/stefnotch/gltf"
	"github.com/stefnotch/gltf/mesh"
)

func TestJSONBytes_MalformedInputYieldsParseError(t *testing.T) {
	_, err := gltf.JSONBytes([]byte(`{"primitives": [`)).Value()
	iss, ok := gltf.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != gltf.CodeParseError {
		t.Fatalf("expected parse_error issues, got %v", err)
	}
}

func TestYAMLBytes_DecodesSameTreeAsJSON(t *testing.T) {
	ctx := context.Background()
	yml := []byte(`
primitives:
  - attributes:
      POSITION: 0
      TEXCOORD_0: 1
    mode: 1
weights: [0.5]
`)
	m, err := mesh.Decode(ctx, gltf.YAMLBytes(yml))
	if err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if got, ok := m.Primitives[0].Mode.Get(); !ok || got != mesh.Lines {
		t.Fatalf("mode = %v,%v", got, ok)
	}
	if len(m.Weights) != 1 || m.Weights[0] != 0.5 {
		t.Fatalf("weights = %v", m.Weights)
	}
}

func TestYAMLBytes_NonStringKeyNamesOffender(t *testing.T) {
	_, err := gltf.YAMLBytes([]byte("1: x\n")).Value()
	iss, ok := gltf.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != gltf.CodeInvalidType {
		t.Fatalf("code = %s", iss[0].Code)
	}
	if iss[0].Params["key"] == nil {
		t.Fatalf("offending key not surfaced: %+v", iss[0])
	}
}

func TestYAMLReader_EmptyDocument(t *testing.T) {
	_, err := gltf.YAMLReader(strings.NewReader("")).Value()
	iss, ok := gltf.AsIssues(err)
	if !ok || iss[0].Code != gltf.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestValueSource_PassesTreeThrough(t *testing.T) {
	tree := map[string]any{"primitives": []any{}}
	v, err := gltf.ValueSource(tree).Value()
	if err != nil {
		t.Fatalf("value source: %v", err)
	}
	if _, ok := v.(map[string]any); !ok {
		t.Fatalf("tree = %T", v)
	}
}

func TestSourceNames(t *testing.T) {
	if gltf.JSONBytes(nil).Name() != "go-json" {
		t.Fatalf("json source name")
	}
	if gltf.YAMLBytes(nil).Name() != "yaml" {
		t.Fatalf("yaml source name")
	}
	if gltf.ValueSource(nil).Name() != "value" {
		t.Fatalf("value source name")
	}
}
