package gltf

// Index is an opaque reference into one of the document's sibling tables
// (accessors, materials). This package records indices; it never dereferences
// them.
type Index uint32

// Extras carries application-specific data through decoding verbatim. Any
// JSON value is accepted and preserved opaquely.
type Extras any

// Extensions holds extension-specific objects keyed by extension name.
// Nested unknown keys are preserved, never rejected; only the outer shape
// (must be an object when present) is enforced.
type Extensions map[string]any

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// ExtensionSemantics enables the vendor attribute capability: semantic
	// names with a leading underscore decode to extra semantics instead of
	// being marked invalid. Runtime flag so behavior is testable without a
	// rebuild.
	ExtensionSemantics bool
}
