package mesh

import (
	"strconv"
	"strings"

	"github.com/stefnotch/gltf/validation"
)

type semanticKind uint8

const (
	semPositions semanticKind = iota
	semNormals
	semTangents
	semColors
	semTexCoords
	semJoints
	semWeights
	semExtra
)

// Semantic names the role a vertex-attribute accessor plays. Some namespaces
// carry a numeric set index (COLOR_0, TEXCOORD_1, ...). Semantic is
// comparable and usable as a map key.
type Semantic struct {
	kind semanticKind
	set  uint32 // set index for the Colors/TexCoords/Joints/Weights namespaces
	name string // extra attribute name for "_"-prefixed semantics
}

var (
	// Positions is the XYZ vertex position semantic, "POSITION".
	Positions = Semantic{kind: semPositions}
	// Normals is the XYZ vertex normal semantic, "NORMAL".
	Normals = Semantic{kind: semNormals}
	// Tangents is the XYZW vertex tangent semantic, "TANGENT", where the w
	// component signals the handedness of the tangent basis.
	Tangents = Semantic{kind: semTangents}
)

// Colors is the RGB(A) vertex color semantic for the given set, "COLOR_n".
func Colors(set uint32) Semantic { return Semantic{kind: semColors, set: set} }

// TexCoords is the UV texture coordinate semantic for the given set,
// "TEXCOORD_n".
func TexCoords(set uint32) Semantic { return Semantic{kind: semTexCoords, set: set} }

// Joints is the joint index semantic for the given set, "JOINTS_n".
func Joints(set uint32) Semantic { return Semantic{kind: semJoints, set: set} }

// Weights is the joint weight semantic for the given set, "WEIGHTS_n".
func Weights(set uint32) Semantic { return Semantic{kind: semWeights, set: set} }

// Extra is a vendor attribute semantic, encoded with a leading underscore.
// Decoding it requires the ExtensionSemantics capability.
func Extra(name string) Semantic { return Semantic{kind: semExtra, name: name} }

// Set returns the attribute set index for the indexed namespaces.
func (s Semantic) Set() (uint32, bool) {
	switch s.kind {
	case semColors, semTexCoords, semJoints, semWeights:
		return s.set, true
	}
	return 0, false
}

// ExtraName returns the vendor attribute name for an Extra semantic.
func (s Semantic) ExtraName() (string, bool) {
	if s.kind == semExtra {
		return s.name, true
	}
	return "", false
}

var semanticNamespaces = []struct {
	prefix string
	make   func(uint32) Semantic
}{
	{"COLOR_", Colors},
	{"TEXCOORD_", TexCoords},
	{"JOINTS_", Joints},
	{"WEIGHTS_", Weights},
}

// ParseSemantic decodes a raw attribute semantic name. Recognition order:
// the exact names POSITION/NORMAL/TANGENT, then the vendor "_" prefix when
// allowExtra is set (the remainder may be empty), then the indexed
// namespaces, whose suffix must parse as an unsigned decimal integer (no
// sign, no whitespace, fits uint32). Anything else is Invalid; a malformed
// suffix is Invalid too, never a structural error.
func ParseSemantic(s string, allowExtra bool) validation.Checked[Semantic] {
	switch s {
	case "POSITION":
		return validation.Valid(Positions)
	case "NORMAL":
		return validation.Valid(Normals)
	case "TANGENT":
		return validation.Valid(Tangents)
	}
	if allowExtra && strings.HasPrefix(s, "_") {
		return validation.Valid(Extra(s[1:]))
	}
	for _, ns := range semanticNamespaces {
		if rest, ok := strings.CutPrefix(s, ns.prefix); ok {
			set, err := strconv.ParseUint(rest, 10, 32)
			if err != nil {
				return validation.Invalid[Semantic]()
			}
			return validation.Valid(ns.make(uint32(set)))
		}
	}
	return validation.Invalid[Semantic]()
}

// String encodes the semantic back to its wire spelling, the exact inverse
// of ParseSemantic for valid inputs.
func (s Semantic) String() string {
	switch s.kind {
	case semPositions:
		return "POSITION"
	case semNormals:
		return "NORMAL"
	case semTangents:
		return "TANGENT"
	case semColors:
		return "COLOR_" + strconv.FormatUint(uint64(s.set), 10)
	case semTexCoords:
		return "TEXCOORD_" + strconv.FormatUint(uint64(s.set), 10)
	case semJoints:
		return "JOINTS_" + strconv.FormatUint(uint64(s.set), 10)
	case semWeights:
		return "WEIGHTS_" + strconv.FormatUint(uint64(s.set), 10)
	case semExtra:
		return "_" + s.name
	}
	return ""
}

// InvalidSemanticName is the placeholder rendered for an Invalid semantic.
// It is for diagnostic display only and never round-trips through
// ParseSemantic.
const InvalidSemanticName = "<invalid semantic name>"

// SemanticString renders a checked semantic for diagnostics.
func SemanticString(c validation.Checked[Semantic]) string {
	if s, ok := c.Get(); ok {
		return s.String()
	}
	return InvalidSemanticName
}
