package mesh

import (
	"github.com/stefnotch/gltf/validation"
)

// Mode is the type of primitives to render. Wire values correspond to the
// GL constants GL_POINTS through GL_TRIANGLE_FAN, numbered 0..6 in order.
type Mode int

const (
	// Points corresponds to GL_POINTS.
	Points Mode = iota
	// Lines corresponds to GL_LINES.
	Lines
	// LineLoop corresponds to GL_LINE_LOOP.
	LineLoop
	// LineStrip corresponds to GL_LINE_STRIP.
	LineStrip
	// Triangles corresponds to GL_TRIANGLES.
	Triangles
	// TriangleStrip corresponds to GL_TRIANGLE_STRIP.
	TriangleStrip
	// TriangleFan corresponds to GL_TRIANGLE_FAN.
	TriangleFan
)

// ValidModes lists every recognized rendering mode in wire order.
var ValidModes = [...]Mode{
	Points,
	Lines,
	LineLoop,
	LineStrip,
	Triangles,
	TriangleStrip,
	TriangleFan,
}

// DecodeMode maps a wire integer onto the closed mode set. Integers outside
// 0..6 yield Invalid; no default is substituted here. An absent mode field
// is handled by the Primitive decoder, which defaults to Valid(Triangles).
func DecodeMode(n int64) validation.Checked[Mode] {
	if n < int64(Points) || n > int64(TriangleFan) {
		return validation.Invalid[Mode]()
	}
	return validation.Valid(Mode(n))
}

// String returns the GL-style name of the mode.
func (m Mode) String() string {
	switch m {
	case Points:
		return "POINTS"
	case Lines:
		return "LINES"
	case LineLoop:
		return "LINE_LOOP"
	case LineStrip:
		return "LINE_STRIP"
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	case TriangleFan:
		return "TRIANGLE_FAN"
	}
	return "UNKNOWN"
}
