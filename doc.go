// Package gltf provides:
//
// - Schema decoding of glTF JSON value trees into immutable typed records
// - A stable error model via Issues (JSON Pointer, code, message)
// - A Checked wrapper separating structural decode failures from
//   semantically unrecognized values, reported later by a validation pass
// - Pluggable input sources (JSON via goccy/go-json, YAML via yaml.v3, or an
//   already-built value tree)
//
// Design policy:
// - Keep only public APIs in the root package; put value-tree coercion under internal/.
// - Place schema records under mesh/, the Checked wrapper and validation hook
//   under validation/, and the CLI under cmd/gltf-lint.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	m, err := mesh.Decode(ctx, gltf.JSONBytes(data))
//	iss := validation.Collect(m, gltf.RootPath())
package gltf
