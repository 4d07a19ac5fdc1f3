package gltf

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Structural codes: the shape of the input does not match the schema.
	// Decoding of the offending node aborts with one of these.
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeOverflow    = "overflow"
	CodeParseError  = "parse_error"
	// Semantic codes: the shape matched but the value is unrecognized.
	// These are produced by the validation pass from Invalid markers, never
	// during decode itself.
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
)

// Issue represents a single decode or validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /primitives/2/mode).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected vocabulary, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"expected":"object", "got":"string"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode/validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// PrefixIssues returns a copy of iss with every path re-rooted under the
// pointer of base. Root-pointing issues take the base path itself.
func PrefixIssues(iss Issues, base PathRef) Issues {
	if len(iss) == 0 || base == nil {
		return iss
	}
	prefix := base.Pointer()
	if prefix == "/" {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		switch it.Path {
		case "", "/":
			it.Path = prefix
		default:
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
