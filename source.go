package objmask

import (
	"bytes"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"
)

// FromJSONBytes decodes a JSON document into a Mask. The decoded tree is
// canonicalized exactly as with New; decode failures are reported as
// Issues with CodeParseError.
func FromJSONBytes(data []byte) (*Mask, error) {
	v, err := DecodeJSONValue(data)
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// FromYAMLBytes decodes a YAML document into a Mask, canonicalized as
// with New.
func FromYAMLBytes(data []byte) (*Mask, error) {
	v, err := DecodeYAMLValue(data)
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// DecodeJSONValue decodes a JSON document into the generic value model
// (map[string]any, []any, scalars) used by Filter and the deepval
// primitives. Numbers are kept as json.Number so round-trips do not lose
// precision.
func DecodeJSONValue(data []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "", Code: CodeParseError, Message: "objmask: invalid JSON input", Cause: err}}
	}
	return v, nil
}

// DecodeYAMLValue decodes a YAML document into the generic value model.
// YAML may produce map[any]any nodes; these are normalized into
// map[string]any, dropping non-string keys.
func DecodeYAMLValue(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, Issues{{Path: "", Code: CodeParseError, Message: "objmask: invalid YAML input", Cause: err}}
	}
	return yamlNormalizeValue(v), nil
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into the map[string]any shape the engine understands.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return v
	}
}
