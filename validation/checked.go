// Package validation provides the Checked wrapper separating semantically
// unrecognized values from structural decode failures, plus the hook a
// whole-document validation pass uses to turn Invalid markers into
// positioned diagnostics.
package validation

// Checked is the tagged result of semantic validation: Valid carries a
// recognized value of type T, Invalid marks a value that was structurally
// present but not part of the known vocabulary. Invalid carries no payload;
// it is a marker, not an error object. The zero value is Invalid.
//
// Checked[T] is comparable whenever T is, so it can serve as a map key.
type Checked[T any] struct {
	value T
	valid bool
}

// Valid wraps a recognized value.
func Valid[T any](v T) Checked[T] { return Checked[T]{value: v, valid: true} }

// Invalid returns the marker for a structurally present but unrecognized
// value.
func Invalid[T any]() Checked[T] { return Checked[T]{} }

// IsValid reports whether the value was recognized.
func (c Checked[T]) IsValid() bool { return c.valid }

// Get returns the recognized value and whether it is present.
func (c Checked[T]) Get() (T, bool) { return c.value, c.valid }

// MustGet returns the recognized value and panics on Invalid. Use it only
// after IsValid, or downstream of a validation pass that already rejected
// the document.
func (c Checked[T]) MustGet() T {
	if !c.valid {
		panic("validation: MustGet on Invalid Checked value")
	}
	return c.value
}
