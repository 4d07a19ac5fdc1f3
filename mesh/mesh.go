package mesh

import (
	"context"
	"sort"

	gltf "github.com/stefnotch/gltf"
	"github.com/stefnotch/gltf/i18n"
	"github.com/stefnotch/gltf/internal/value"
	"github.com/stefnotch/gltf/validation"
)

// Mesh is a set of primitives to be rendered.
//
// A node can contain one or more meshes and its transform places the meshes
// in the scene.
type Mesh struct {
	// Extensions holds extension specific data.
	Extensions gltf.Extensions
	// Extras holds optional application specific data.
	Extras gltf.Extras
	// Name is the optional user-defined name for this object.
	Name *string
	// Primitives defines the geometry to be rendered with a material.
	Primitives []Primitive
	// Weights to be applied to the morph targets.
	Weights []float64
}

// Primitive is geometry to be rendered with the given material.
type Primitive struct {
	// Attributes maps attribute semantics to the accessors containing the
	// corresponding attribute data. Entries whose key failed semantic
	// decoding are retained under the Invalid key; their raw spellings are
	// listed in UnrecognizedAttributes.
	Attributes map[validation.Checked[Semantic]]gltf.Index
	// UnrecognizedAttributes preserves, sorted, the raw spelling of every
	// attribute key that decoded to Invalid, so the validation pass can name
	// the offending keys exactly.
	UnrecognizedAttributes []string
	// Extensions holds extension specific data.
	Extensions gltf.Extensions
	// Extras holds optional application specific data.
	Extras gltf.Extras
	// Indices references the accessor containing the index data, if the
	// primitive is indexed geometry.
	Indices *gltf.Index
	// Material to apply to this primitive when rendering.
	Material *gltf.Index
	// Mode is the type of primitives to render. Defaults to
	// Valid(Triangles) when the source field is absent.
	Mode validation.Checked[Mode]
	// Targets holds the morph targets, each mapping attributes (only
	// POSITION, NORMAL and TANGENT) to their deviations.
	Targets []MorphTarget
}

// MorphTarget maps attributes to their deviations in a morph target.
type MorphTarget struct {
	// Positions references the XYZ position displacements, "POSITION".
	Positions *gltf.Index
	// Normals references the XYZ normal displacements, "NORMAL".
	Normals *gltf.Index
	// Tangents references the XYZ tangent displacements, "TANGENT".
	Tangents *gltf.Index
}

// Decode reads src into a value tree and decodes one mesh from it.
func Decode(ctx context.Context, src gltf.Source, opts ...gltf.DecodeOpt) (*Mesh, error) {
	v, err := src.Value()
	if err != nil {
		return nil, err
	}
	return DecodeMesh(ctx, v, opts...)
}

// DecodeMesh decodes a mesh from a raw value tree. Structural mismatches
// abort with gltf.Issues pinpointing the first offending field; semantic
// problems never abort and surface as Invalid markers on the result.
func DecodeMesh(ctx context.Context, v any, opts ...gltf.DecodeOpt) (*Mesh, error) {
	m, iss := decodeMesh(v, gltf.RootPath(), lastOpt(opts))
	if iss != nil {
		return nil, iss
	}
	return m, nil
}

// DecodePrimitive decodes a single primitive from a raw value tree.
func DecodePrimitive(ctx context.Context, v any, opts ...gltf.DecodeOpt) (*Primitive, error) {
	p, iss := decodePrimitive(v, gltf.RootPath(), lastOpt(opts))
	if iss != nil {
		return nil, iss
	}
	return p, nil
}

// DecodeMorphTarget decodes a single morph target from a raw value tree.
func DecodeMorphTarget(ctx context.Context, v any) (*MorphTarget, error) {
	t, iss := decodeMorphTarget(v, gltf.RootPath())
	if iss != nil {
		return nil, iss
	}
	return t, nil
}

func lastOpt(opts []gltf.DecodeOpt) gltf.DecodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return gltf.DecodeOpt{}
}

func structural(at gltf.PathRef, code string, kv ...any) gltf.Issues {
	return gltf.AppendIssues(nil, at.Issue(code, i18n.T(code, nil), kv...))
}

func decodeMesh(v any, at gltf.PathRef, opt gltf.DecodeOpt) (*Mesh, gltf.Issues) {
	obj, ok := value.Object(v)
	if !ok {
		return nil, structural(at, gltf.CodeInvalidType, "expected", "object")
	}
	m := &Mesh{Extras: obj["extras"]}

	ext, iss := decodeExtensions(obj, at)
	if iss != nil {
		return nil, iss
	}
	m.Extensions = ext

	if raw, exists := obj["name"]; exists {
		s, ok := value.String(raw)
		if !ok {
			return nil, structural(at.Field("name"), gltf.CodeInvalidType, "expected", "string")
		}
		m.Name = &s
	}

	rawPrims, exists := obj["primitives"]
	if !exists {
		return nil, structural(at.Field("primitives"), gltf.CodeRequired)
	}
	prims, ok := value.Array(rawPrims)
	if !ok {
		return nil, structural(at.Field("primitives"), gltf.CodeInvalidType, "expected", "array")
	}
	m.Primitives = make([]Primitive, 0, len(prims))
	for i, el := range prims {
		p, iss := decodePrimitive(el, at.Field("primitives").Index(i), opt)
		if iss != nil {
			return nil, iss
		}
		m.Primitives = append(m.Primitives, *p)
	}

	if raw, exists := obj["weights"]; exists {
		arr, ok := value.Array(raw)
		if !ok {
			return nil, structural(at.Field("weights"), gltf.CodeInvalidType, "expected", "array")
		}
		m.Weights = make([]float64, 0, len(arr))
		for i, el := range arr {
			f, ok := value.Float64(el)
			if !ok {
				return nil, structural(at.Field("weights").Index(i), gltf.CodeInvalidType, "expected", "number")
			}
			m.Weights = append(m.Weights, f)
		}
	}
	return m, nil
}

func decodePrimitive(v any, at gltf.PathRef, opt gltf.DecodeOpt) (*Primitive, gltf.Issues) {
	obj, ok := value.Object(v)
	if !ok {
		return nil, structural(at, gltf.CodeInvalidType, "expected", "object")
	}
	p := &Primitive{
		Extras: obj["extras"],
		Mode:   validation.Valid(Triangles),
	}

	ext, iss := decodeExtensions(obj, at)
	if iss != nil {
		return nil, iss
	}
	p.Extensions = ext

	rawAttrs, exists := obj["attributes"]
	if !exists {
		return nil, structural(at.Field("attributes"), gltf.CodeRequired)
	}
	attrs, ok := value.Object(rawAttrs)
	if !ok {
		return nil, structural(at.Field("attributes"), gltf.CodeInvalidType, "expected", "object")
	}
	// Sorted key order keeps diagnostics and duplicate-semantic overwrites
	// deterministic; the map itself is last-write-wins for keys that decode
	// to the same Semantic.
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p.Attributes = make(map[validation.Checked[Semantic]]gltf.Index, len(attrs))
	for _, k := range keys {
		idx, iss := decodeIndex(attrs[k], at.Field("attributes").Field(k))
		if iss != nil {
			return nil, iss
		}
		sem := ParseSemantic(k, opt.ExtensionSemantics)
		if !sem.IsValid() {
			p.UnrecognizedAttributes = append(p.UnrecognizedAttributes, k)
		}
		p.Attributes[sem] = idx
	}

	if raw, exists := obj["indices"]; exists {
		idx, iss := decodeIndex(raw, at.Field("indices"))
		if iss != nil {
			return nil, iss
		}
		p.Indices = &idx
	}
	if raw, exists := obj["material"]; exists {
		idx, iss := decodeIndex(raw, at.Field("material"))
		if iss != nil {
			return nil, iss
		}
		p.Material = &idx
	}

	if raw, exists := obj["mode"]; exists {
		if n, ok := value.Int64(raw); ok {
			p.Mode = DecodeMode(n)
		} else if value.IsNumber(raw) {
			// A fractional wire number is still number-shaped: semantic
			// misuse, not a structural error.
			p.Mode = validation.Invalid[Mode]()
		} else {
			return nil, structural(at.Field("mode"), gltf.CodeInvalidType, "expected", "integer")
		}
	}

	if raw, exists := obj["targets"]; exists {
		arr, ok := value.Array(raw)
		if !ok {
			return nil, structural(at.Field("targets"), gltf.CodeInvalidType, "expected", "array")
		}
		p.Targets = make([]MorphTarget, 0, len(arr))
		for i, el := range arr {
			t, iss := decodeMorphTarget(el, at.Field("targets").Index(i))
			if iss != nil {
				return nil, iss
			}
			p.Targets = append(p.Targets, *t)
		}
	}
	return p, nil
}

func decodeMorphTarget(v any, at gltf.PathRef) (*MorphTarget, gltf.Issues) {
	obj, ok := value.Object(v)
	if !ok {
		return nil, structural(at, gltf.CodeInvalidType, "expected", "object")
	}
	t := &MorphTarget{}
	for _, f := range []struct {
		key string
		dst **gltf.Index
	}{
		{"POSITION", &t.Positions},
		{"NORMAL", &t.Normals},
		{"TANGENT", &t.Tangents},
	} {
		raw, exists := obj[f.key]
		if !exists {
			continue
		}
		idx, iss := decodeIndex(raw, at.Field(f.key))
		if iss != nil {
			return nil, iss
		}
		*f.dst = &idx
	}
	// Other keys are ignored: morph targets only carry the three supported
	// displacement semantics.
	return t, nil
}

// decodeIndex decodes an opaque accessor/material table reference. A
// reference that cannot index a table is a shape error: non-numbers and
// fractional numbers are invalid_type, integers outside uint32 are overflow.
func decodeIndex(v any, at gltf.PathRef) (gltf.Index, gltf.Issues) {
	if u, ok := value.Uint32(v); ok {
		return gltf.Index(u), nil
	}
	if n, ok := value.Int64(v); ok {
		return 0, structural(at, gltf.CodeOverflow, "got", n)
	}
	return 0, structural(at, gltf.CodeInvalidType, "expected", "integer")
}

// decodeExtensions enforces only the outer shape of the extensions field;
// nested unknown keys are preserved opaquely, never rejected.
func decodeExtensions(obj map[string]any, at gltf.PathRef) (gltf.Extensions, gltf.Issues) {
	raw, exists := obj["extensions"]
	if !exists {
		return nil, nil
	}
	m, ok := value.Object(raw)
	if !ok {
		return nil, structural(at.Field("extensions"), gltf.CodeInvalidType, "expected", "object")
	}
	out := make(gltf.Extensions, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}
