package gltf

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/stefnotch/gltf/internal/value"
)

// Source abstracts over polymorphic input sources. Value materializes the
// input as a generic value tree (map[string]any, []any, string, json.Number,
// bool, nil). Sources are one-shot: Value consumes the underlying input.
type Source interface {
	Value() (any, error)
	Name() string
}

// JSONReader wraps an io.Reader as a JSON Source backed by goccy/go-json.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// JSONBytes wraps a byte slice as a JSON Source backed by goccy/go-json.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// YAMLReader wraps an io.Reader as a YAML Source. The decoded node tree is
// normalized to the same value-tree shapes the JSON sources produce.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

// ValueSource wraps an already-built value tree, the input path used by an
// enclosing whole-document decoder.
func ValueSource(v any) Source { return valueSource{v: v} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Value() (any, error) {
	dec := j.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, AppendIssues(nil, Issue{
			Path:    "/",
			Code:    CodeParseError,
			Message: err.Error(),
			Cause:   err,
			Offset:  -1,
		})
	}
	return v, nil
}

func (jsonSource) Name() string { return "go-json" }

type yamlSource struct{ r io.Reader }

func (s yamlSource) Value() (any, error) {
	dec := yaml.NewDecoder(s.r)
	var node any
	if err := dec.Decode(&node); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "empty document"
		}
		return nil, AppendIssues(nil, Issue{
			Path:    "/",
			Code:    CodeParseError,
			Message: msg,
			Cause:   err,
			Offset:  -1,
		})
	}
	norm, err := value.Normalize(node)
	if err != nil {
		it := Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: err.Error(),
			Cause:   err,
			Offset:  -1,
		}
		var nk *value.NonStringKeyError
		if errors.As(err, &nk) {
			it.Params = map[string]any{"key": nk.Key}
		}
		return nil, AppendIssues(nil, it)
	}
	return norm, nil
}

func (yamlSource) Name() string { return "yaml" }

type valueSource struct{ v any }

func (s valueSource) Value() (any, error) { return s.v, nil }
func (valueSource) Name() string          { return "value" }
