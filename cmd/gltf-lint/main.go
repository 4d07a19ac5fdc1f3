package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	gltf "github.com/stefnotch/gltf"
	"github.com/stefnotch/gltf/internal/value"
	"github.com/stefnotch/gltf/mesh"
	"github.com/stefnotch/gltf/validation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gltf-lint\n\nUsage:\n  gltf-lint check [-yaml] [-extensions] file\n\nDecodes the meshes of a glTF document and prints one line per diagnostic:\n  <json-pointer>\\t<code>\\t<message>\nExit status is 1 when any structural error or diagnostic is found.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var asYAML bool
	var extensions bool
	fs.BoolVar(&asYAML, "yaml", false, "treat the input as YAML instead of JSON")
	fs.BoolVar(&extensions, "extensions", false, "enable vendor (_-prefixed) attribute semantics")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	file := fs.Arg(0)

	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("read %s: %v", file, err)
	}
	var src gltf.Source
	if asYAML || strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml") {
		src = gltf.YAMLBytes(data)
	} else {
		src = gltf.JSONBytes(data)
	}

	tree, err := src.Value()
	if err != nil {
		os.Exit(report(err))
	}
	os.Exit(checkTree(context.Background(), tree, gltf.DecodeOpt{ExtensionSemantics: extensions}))
}

// checkTree lints every mesh under the document's "meshes" array; a tree
// without one is decoded as a single standalone mesh, which keeps fixture
// snippets lintable.
func checkTree(ctx context.Context, tree any, opt gltf.DecodeOpt) int {
	doc, ok := value.Object(tree)
	if ok {
		if rawMeshes, exists := doc["meshes"]; exists {
			arr, ok := value.Array(rawMeshes)
			if !ok {
				return report(gltf.AppendIssues(nil,
					gltf.PathAt("/meshes").Issue(gltf.CodeInvalidType, "expected array", "expected", "array")))
			}
			status := 0
			for i, el := range arr {
				at := gltf.RootPath().Field("meshes").Index(i)
				if checkMesh(ctx, el, at, opt) != 0 {
					status = 1
				}
			}
			return status
		}
	}
	return checkMesh(ctx, tree, gltf.RootPath(), opt)
}

func checkMesh(ctx context.Context, v any, at gltf.PathRef, opt gltf.DecodeOpt) int {
	m, err := mesh.DecodeMesh(ctx, v, opt)
	if err != nil {
		iss, ok := gltf.AsIssues(err)
		if !ok {
			fatalf("decode %s: %v", at.Pointer(), err)
		}
		return report(gltf.PrefixIssues(iss, at))
	}
	if iss := validation.Collect(m, at); len(iss) > 0 {
		return report(iss)
	}
	return 0
}

func report(err error) int {
	iss, ok := gltf.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, it := range iss {
		fmt.Printf("%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
	if len(iss) == 0 {
		return 0
	}
	return 1
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
