package validation

import (
	gltf "github.com/stefnotch/gltf"
)

// Validator is implemented by decoded records that can walk their Checked
// fields and report each Invalid marker as a positioned diagnostic. The
// decode layer only produces markers; driving this hook is the job of a
// later whole-document validation pass that can attach meaningful paths.
type Validator interface {
	Validate(at gltf.PathRef, report func(gltf.Issue))
}

// Collect drives the hook and accumulates the reported issues. at anchors
// the reported paths; pass gltf.RootPath() when v is the document root.
func Collect(v Validator, at gltf.PathRef) gltf.Issues {
	if v == nil {
		return nil
	}
	if at == nil {
		at = gltf.RootPath()
	}
	var iss gltf.Issues
	v.Validate(at, func(it gltf.Issue) {
		iss = gltf.AppendIssues(iss, it)
	})
	return iss
}
