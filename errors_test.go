package gltf_test

import (
	"fmt"
	"testing"

	gltf "github.com/stefnotch/gltf"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := gltf.Issues{
		{Path: "/a", Code: gltf.CodeInvalidType},
		{Path: "/b", Code: gltf.CodeRequired},
		{Path: "/c", Code: gltf.CodeOverflow},
		{Path: "/d", Code: gltf.CodeParseError},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	// only the first few are shown, with a total
	if want := "invalid_type at /a"; len(s) < len(want) || s[:len(want)] != want {
		t.Fatalf("summary = %q", s)
	}
}

func TestAsIssues_ExtractsThroughWrapping(t *testing.T) {
	iss := gltf.AppendIssues(nil, gltf.Issue{Path: "/x", Code: gltf.CodeRequired})
	wrapped := fmt.Errorf("decode failed: %w", error(iss))
	got, ok := gltf.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "/x" {
		t.Fatalf("AsIssues = %v,%v", got, ok)
	}
	if _, ok := gltf.AsIssues(nil); ok {
		t.Fatalf("nil error must not extract")
	}
}

func TestPathRef_PointerAndEscaping(t *testing.T) {
	p := gltf.RootPath()
	if p.Pointer() != "/" {
		t.Fatalf("root = %q", p.Pointer())
	}
	got := p.Field("primitives").Index(2).Field("attributes").Field("a/b~c").Pointer()
	if got != "/primitives/2/attributes/a~1b~0c" {
		t.Fatalf("pointer = %q", got)
	}
	// chains do not alias: the parent is unchanged
	base := gltf.PathAt("/meshes/0")
	_ = base.Field("x")
	if base.Pointer() != "/meshes/0" {
		t.Fatalf("base mutated: %q", base.Pointer())
	}
}

func TestPathRef_Issue(t *testing.T) {
	it := gltf.PathAt("/meshes/0").Field("mode").Issue(gltf.CodeInvalidEnum, "nope", "got", 9)
	if it.Path != "/meshes/0/mode" || it.Code != gltf.CodeInvalidEnum {
		t.Fatalf("issue = %+v", it)
	}
	if it.Params["got"] != 9 {
		t.Fatalf("params = %v", it.Params)
	}
}

func TestPrefixIssues(t *testing.T) {
	iss := gltf.Issues{
		{Path: "/mode", Code: gltf.CodeInvalidEnum},
		{Path: "/", Code: gltf.CodeInvalidType},
	}
	out := gltf.PrefixIssues(iss, gltf.PathAt("/meshes/4"))
	if out[0].Path != "/meshes/4/mode" || out[1].Path != "/meshes/4" {
		t.Fatalf("prefixed = %v", out)
	}
	// root base is a no-op
	same := gltf.PrefixIssues(iss, gltf.RootPath())
	if same[0].Path != "/mode" {
		t.Fatalf("root prefix changed paths: %v", same)
	}
}
