// Package encode renders IR trees for human inspection, either as
// YAML-style block text (with optional terminal colors) or as JSON.
//
// The YAML rendering keeps summary and instance markers visible as
// tags, e.g.
//
//	card: !summary(bank.Card,0x2a) bank.Card (0x2a) ending 1111
//
// The JSON rendering drops markers and flattens instances to their
// internal shape; like everything downstream of tersification it is a
// lossy inspection view, not a serialization format.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tersify/go-tersify/fromgo"
	"github.com/tersify/go-tersify/ir"
)

type EncState struct {
	indent int
	format Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	if es.format == JSONFormat {
		d, err := json.Marshal(fromgo.ToAny(node))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		return writeString(w, "\n")
	}
	return encodeBlock(node, w, es, 0)
}

// encodeBlock writes one or more whole lines for node at the given
// depth.
func encodeBlock(n *ir.Node, w io.Writer, es *EncState, depth int) error {
	if text, ok := inlineText(n, es); ok {
		return writeLine(w, es, depth, text)
	}
	if marker := markerText(n, es); marker != "" {
		if err := writeLine(w, es, depth, marker); err != nil {
			return err
		}
	}
	if len(n.Fields) != 0 {
		return encodeFields(n, w, es, depth)
	}
	return encodeElems(n, w, es, depth)
}

func encodeFields(n *ir.Node, w io.Writer, es *EncState, depth int) error {
	for i, field := range n.Fields {
		key := keyText(field, es)
		sep := es.color(n.Type, SepColor, ":")
		v := n.Values[i]
		if text, ok := inlineText(v, es); ok {
			if err := writeLine(w, es, depth, key+sep+" "+text); err != nil {
				return err
			}
			continue
		}
		head := key + sep
		if marker := markerText(v, es); marker != "" {
			head += " " + marker
		}
		if err := writeLine(w, es, depth, head); err != nil {
			return err
		}
		if err := encodeChildren(v, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func encodeElems(n *ir.Node, w io.Writer, es *EncState, depth int) error {
	dash := es.color(n.Type, SepColor, "-")
	for _, v := range n.Values {
		if text, ok := inlineText(v, es); ok {
			if err := writeLine(w, es, depth, dash+" "+text); err != nil {
				return err
			}
			continue
		}
		head := dash
		if marker := markerText(v, es); marker != "" {
			head += " " + marker
		}
		if err := writeLine(w, es, depth, head); err != nil {
			return err
		}
		if err := encodeChildren(v, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// encodeChildren writes a container's contents without re-emitting its
// marker, which the parent already placed on its own line.
func encodeChildren(n *ir.Node, w io.Writer, es *EncState, depth int) error {
	if len(n.Fields) != 0 {
		return encodeFields(n, w, es, depth)
	}
	return encodeElems(n, w, es, depth)
}

// inlineText renders nodes that fit on a single line: scalars, empty
// containers and opaque instances. The second result is false for
// anything needing a block.
func inlineText(n *ir.Node, es *EncState) (string, bool) {
	marker := markerText(n, es)
	switch n.Type {
	case ir.NullType:
		return prefixed(marker, es.color(n.Type, ValueColor, "null")), true
	case ir.BoolType:
		return prefixed(marker, es.color(n.Type, ValueColor, strconv.FormatBool(n.Bool))), true
	case ir.NumberType:
		return prefixed(marker, es.color(n.Type, ValueColor, numberText(n))), true
	case ir.StringType:
		return prefixed(marker, es.color(n.Type, ValueColor, stringText(n.String))), true
	case ir.ArrayType:
		if len(n.Values) == 0 {
			return prefixed(marker, "[]"), true
		}
	case ir.ObjectType:
		if len(n.Values) == 0 {
			return prefixed(marker, "{}"), true
		}
	case ir.InstanceType:
		if n.Opaque() {
			return marker, true
		}
	}
	return "", false
}

// markerText renders the node's tag, or the synthetic instance marker
// for untagged instances.
func markerText(n *ir.Node, es *EncState) string {
	tag := n.Tag
	if tag == "" && n.Type == ir.InstanceType {
		tag = "!instance(" + n.TypeName + "," + ir.IdentityToken(n) + ")"
	}
	if tag == "" {
		return ""
	}
	return es.color(n.Type, TagColor, tag)
}

func prefixed(marker, text string) string {
	if marker == "" {
		return text
	}
	return marker + " " + text
}

func keyText(field *ir.Node, es *EncState) string {
	key := field.String
	if field.Type == ir.NullType {
		key = "null"
	}
	return es.color(ir.ObjectType, FieldColor, stringText(key))
}

func numberText(n *ir.Node) string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	default:
		return n.Number
	}
}

// stringText quotes only where a bare rendering would be ambiguous.
func stringText(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return strconv.Quote(s)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "null", "true", "false":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	return strings.ContainsAny(s, ":#\"'\n\t{}[],&*!|>%@`") ||
		s != strings.TrimSpace(s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeLine(w io.Writer, es *EncState, depth int, text string) error {
	indent := strings.Repeat(" ", es.indent*depth)
	return writeString(w, indent+text+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
