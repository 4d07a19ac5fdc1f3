// Package mesh decodes the mesh slice of a glTF document: meshes, their
// render primitives and morph targets, the closed set of rendering modes,
// and the vertex-attribute semantic vocabulary.
//
// Overview
//   - Decode/DecodeMesh: value tree -> immutable Mesh record.
//   - Mode: closed integer enumeration (POINTS..TRIANGLE_FAN, wire 0..6).
//   - Semantic: namespaced attribute name (POSITION, COLOR_0, _VENDOR, ...).
//   - Failure model is two-tier: shape mismatches abort with gltf.Issues,
//     unrecognized-but-well-shaped values become validation.Invalid markers
//     embedded in an otherwise complete result.
//
// Decoding is pure and side-effect free; independent inputs may be decoded
// concurrently and results are never mutated after construction.
package mesh
