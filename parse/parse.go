// Package parse decodes YAML or JSON documents into IR trees.
//
// Plain YAML values map directly onto scalar, array and object nodes.
// A mapping carrying the reserved "$type" key becomes an instance of
// the named type, with "$id" optionally pinning its identity token.
// This is how documents produced outside the process declare the typed
// objects tersification should consider.
package parse

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/tersify/go-tersify/fromgo"
	"github.com/tersify/go-tersify/ir"
)

// Reserved mapping keys recognized by Parse.
const (
	TypeKey = "$type"
	IDKey   = "$id"
)

// Parse decodes a single document. JSON is valid YAML, so both formats
// are accepted.
func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	n, err := node(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return n, nil
}

func node(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case map[string]any:
		return mapping(t)
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, e := range t {
			n, err := node(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	default:
		// scalars take the same path ingested Go values do
		return fromgo.From(v)
	}
}

func mapping(m map[string]any) (*ir.Node, error) {
	typeName, err := stringKey(m, TypeKey)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]*ir.Node, len(m))
	for key, val := range m {
		if key == TypeKey || key == IDKey {
			continue
		}
		n, err := node(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		fields[key] = n
	}
	if typeName == "" {
		if _, ok := m[IDKey]; ok {
			return nil, fmt.Errorf("%q without %q", IDKey, TypeKey)
		}
		return ir.FromMap(fields), nil
	}
	res := ir.InstanceFromMap(typeName, fields)
	if raw, ok := m[IDKey]; ok {
		id, err := parseID(raw)
		if err != nil {
			return nil, fmt.Errorf("instance %s: %w", typeName, err)
		}
		res.ID = id
	}
	return res, nil
}

func stringKey(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%q must be a non-empty string, got %v", key, raw)
	}
	return s, nil
}

// parseID accepts the forms yaml hands back for an identity: a number,
// or a string such as "0x2a".
func parseID(v any) (uint64, error) {
	switch t := v.(type) {
	case string:
		id, err := strconv.ParseUint(t, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("bad %q value %q", IDKey, t)
		}
		return id, nil
	case int:
		if t < 0 {
			return 0, fmt.Errorf("negative %q value %d", IDKey, t)
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return 0, fmt.Errorf("negative %q value %d", IDKey, t)
		}
		return uint64(t), nil
	case uint64:
		return t, nil
	default:
		return 0, fmt.Errorf("bad %q value %v", IDKey, v)
	}
}
