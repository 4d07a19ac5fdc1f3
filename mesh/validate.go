package mesh

import (
	gltf "github.com/stefnotch/gltf"
	"github.com/stefnotch/gltf/i18n"
)

// Validate reports one issue per Invalid marker reachable from the mesh.
// It implements validation.Validator.
func (m *Mesh) Validate(at gltf.PathRef, report func(gltf.Issue)) {
	for i := range m.Primitives {
		m.Primitives[i].Validate(at.Field("primitives").Index(i), report)
	}
}

// Validate reports the primitive's Invalid markers: an unrecognized mode
// code and every attribute key that failed semantic decoding, each under
// its exact raw spelling.
func (p *Primitive) Validate(at gltf.PathRef, report func(gltf.Issue)) {
	if !p.Mode.IsValid() {
		it := at.Field("mode").Issue(gltf.CodeInvalidEnum, i18n.T(gltf.CodeInvalidEnum, nil))
		it.Hint = "one of POINTS(0) LINES(1) LINE_LOOP(2) LINE_STRIP(3) TRIANGLES(4) TRIANGLE_STRIP(5) TRIANGLE_FAN(6)"
		report(it)
	}
	for _, raw := range p.UnrecognizedAttributes {
		report(at.Field("attributes").Field(raw).Issue(
			gltf.CodeInvalidFormat, i18n.T(gltf.CodeInvalidFormat, nil), "semantic", raw))
	}
}
