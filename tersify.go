// Package tersify replaces complex objects nested in a data structure
// with compact, clearly-marked summaries.
//
// Tersify walks a document tree and, for every instance below the root
// whose type has a registered plugin, substitutes a one-line scalar
// summary; instances without a plugin but with container-like internals
// are descended into and, when anything beneath them changed, wrapped
// as structural summaries. Unchanged subtrees come back by the same
// pointer as the input — only the spine above a change is reallocated,
// and the input is never mutated.
//
// The result is for human inspection (debugging, logging). It is lossy
// on purpose and must not be used to reconstruct the original data.
//
// The value passed to the top-level call is exempt: a caller inspecting
// one complex object directly wants to see it, not a summary of it.
// Summarization protects against unexpected deep objects, not the thing
// being inspected.
//
// Cyclic structures are not detected; passing one risks non-termination.
// Ingestion through fromgo cuts pointer cycles off before they reach
// the engine.
package tersify

import (
	"strconv"
	"strings"

	"github.com/tersify/go-tersify/debug"
	"github.com/tersify/go-tersify/fromgo"
	"github.com/tersify/go-tersify/ir"
	"github.com/tersify/go-tersify/plugin"
)

// Engine tersifies documents against a fixed plugin registry.
type Engine struct {
	reg *plugin.Registry
}

// New returns an engine using the given registry, or the process
// default registry when reg is nil.
func New(reg *plugin.Registry) *Engine {
	if reg == nil {
		reg = plugin.Default()
	}
	return &Engine{reg: reg}
}

// Tersify transforms a document using the default plugin registry.
func Tersify(doc *ir.Node) (*ir.Node, error) {
	return New(nil).Tersify(doc)
}

// Any converts a Go value to IR via fromgo and tersifies it with the
// default plugin registry.
func Any(v any) (*ir.Node, error) {
	doc, err := fromgo.From(v)
	if err != nil {
		return nil, err
	}
	return Tersify(doc)
}

// Replacement records one substitution made during tersification.
type Replacement struct {
	// Path is the JSON-pointer of the replaced value within the root.
	Path string
	// TypeName and Identity name the instance that was replaced.
	TypeName string
	Identity string
	// Structural is true when the replacement preserved container
	// shape instead of collapsing to a one-line summary.
	Structural bool
}

// Tersify transforms a document. The input is not mutated; subtrees
// that required no change are returned by the same pointer. The only
// error condition is a plugin's Describe failing, which aborts the
// whole transformation.
func (e *Engine) Tersify(doc *ir.Node) (*ir.Node, error) {
	if doc == nil {
		return nil, nil
	}
	w := &walker{reg: e.reg}
	res, _, err := w.walk(doc, true)
	return res, err
}

// TersifyReport is Tersify plus a record of every substitution made, in
// document order.
func (e *Engine) TersifyReport(doc *ir.Node) (*ir.Node, []Replacement, error) {
	if doc == nil {
		return nil, nil, nil
	}
	w := &walker{reg: e.reg, report: true}
	res, _, err := w.walk(doc, true)
	if err != nil {
		return nil, nil, err
	}
	return res, w.reps, nil
}

type walker struct {
	reg    *plugin.Registry
	report bool
	path   []string
	reps   []Replacement
}

// walk returns the transformed node and whether it differs from n. The
// changed result is what parents use to decide between reallocating a
// container and reusing the original pointer.
func (w *walker) walk(n *ir.Node, isRoot bool) (*ir.Node, bool, error) {
	switch n.Type {
	case ir.ArrayType, ir.ObjectType:
		vals, changed, err := w.walkValues(n)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return n, false, nil
		}
		// key nodes are immutable here, share them
		return &ir.Node{
			Type:   n.Type,
			Tag:    n.Tag,
			Fields: n.Fields,
			Values: vals,
		}, true, nil
	case ir.InstanceType:
		if isRoot {
			return n, false, nil
		}
		return w.walkInstance(n)
	default:
		return n, false, nil
	}
}

func (w *walker) walkInstance(n *ir.Node) (*ir.Node, bool, error) {
	sum, err := w.reg.Summarize(n)
	if err != nil {
		return nil, false, err
	}
	if sum != nil {
		if debug.Plugins() {
			debug.Logf("summarized %s %s at %q\n", n.TypeName, ir.IdentityToken(n), w.pointer())
		}
		w.record(n, false)
		return sum, true, nil
	}
	if n.Opaque() {
		return n, false, nil
	}
	// no plugin: descend into the internal container; the root
	// exemption does not apply below the top-level call
	vals, changed, err := w.walkValues(n)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return n, false, nil
	}
	res := &ir.Node{
		Tag:    ir.SummaryTag(n.TypeName, ir.IdentityToken(n)),
		Values: vals,
	}
	if n.MapShaped() {
		res.Type = ir.ObjectType
		res.Fields = n.Fields
	} else {
		res.Type = ir.ArrayType
	}
	if debug.Walk() {
		debug.Logf("structural summary of %s %s at %q\n", n.TypeName, ir.IdentityToken(n), w.pointer())
	}
	w.record(n, true)
	return res, true, nil
}

// walkValues transforms a container's values. It returns a nil slice
// and false when nothing changed; otherwise the returned slice reuses
// the untouched prefix and every untouched element by pointer.
func (w *walker) walkValues(n *ir.Node) ([]*ir.Node, bool, error) {
	var vals []*ir.Node
	for i, v := range n.Values {
		w.push(n, i)
		res, changed, err := w.walk(v, false)
		w.pop()
		if err != nil {
			return nil, false, err
		}
		if changed && vals == nil {
			vals = make([]*ir.Node, i, len(n.Values))
			copy(vals, n.Values[:i])
		}
		if vals != nil {
			vals = append(vals, res)
		}
	}
	return vals, vals != nil, nil
}

func (w *walker) push(n *ir.Node, i int) {
	if !w.report && !debug.Walk() && !debug.Plugins() {
		return
	}
	var seg string
	if len(n.Fields) != 0 {
		seg = escapePointerSegment(n.Fields[i].String)
	} else {
		seg = strconv.Itoa(i)
	}
	w.path = append(w.path, seg)
}

func (w *walker) pop() {
	if len(w.path) != 0 {
		w.path = w.path[:len(w.path)-1]
	}
}

func (w *walker) pointer() string {
	return "/" + strings.Join(w.path, "/")
}

func (w *walker) record(n *ir.Node, structural bool) {
	if !w.report {
		return
	}
	w.reps = append(w.reps, Replacement{
		Path:       w.pointer(),
		TypeName:   n.TypeName,
		Identity:   ir.IdentityToken(n),
		Structural: structural,
	})
}

// RFC 6901 escaping.
func escapePointerSegment(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
