// Package report renders the substitutions made by a tersification as
// an RFC 6902 JSON Patch, for callers that want to log or audit what
// was summarized rather than diff full documents.
//
// The patch applies to the JSON view of the original document (see
// encode.JSONFormat) and produces the JSON view of the tersified one.
// Like those views it is for inspection: applying it does not
// reconstruct markers or identities.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tersify/go-tersify"
	"github.com/tersify/go-tersify/fromgo"
	"github.com/tersify/go-tersify/ir"
)

// op is one RFC 6902 operation.
type op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Patch builds the JSON Patch document for replacements reported by
// Engine.TersifyReport against the tersified result. The returned
// bytes are validated with jsonpatch before being handed back.
func Patch(tersified *ir.Node, reps []tersify.Replacement) ([]byte, error) {
	ops := make([]op, 0, len(reps))
	for _, rep := range reps {
		target, err := at(tersified, rep.Path)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op{
			Op:    "replace",
			Path:  rep.Path,
			Value: fromgo.ToAny(target),
		})
	}
	d, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	if _, err := jsonpatch.DecodePatch(d); err != nil {
		return nil, fmt.Errorf("built invalid patch: %w", err)
	}
	return d, nil
}

// Apply applies a patch built by Patch to a JSON document, typically
// the JSON view of the original input.
func Apply(patch, doc []byte) ([]byte, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// at resolves a JSON pointer against an IR tree. Replacement paths
// come from the engine, so failing to resolve one is an internal
// inconsistency worth surfacing.
func at(n *ir.Node, pointer string) (*ir.Node, error) {
	if pointer == "" {
		return n, nil
	}
	if pointer[0] != '/' {
		return nil, fmt.Errorf("bad pointer %q", pointer)
	}
	for _, seg := range strings.Split(pointer[1:], "/") {
		seg = strings.ReplaceAll(seg, "~1", "/")
		seg = strings.ReplaceAll(seg, "~0", "~")
		next, err := child(n, seg)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", pointer, err)
		}
		n = next
	}
	return n, nil
}

func child(n *ir.Node, seg string) (*ir.Node, error) {
	if len(n.Fields) != 0 {
		if v := ir.Get(n, seg); v != nil {
			return v, nil
		}
		return nil, fmt.Errorf("no field %q", seg)
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return nil, fmt.Errorf("bad index %q", seg)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("index %d out of range", i)
	}
	return n.Values[i], nil
}
