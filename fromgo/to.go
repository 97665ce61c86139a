package fromgo

import "github.com/tersify/go-tersify/ir"

// ToAny converts an IR tree to plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Instances flatten to
// their internal shape; opaque instances become their identity token.
// Tags, type names and origins do not survive the conversion — it is
// for plugin expression environments and JSON views, not round trips.
func ToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return n.Number
	case ir.StringType:
		return n.String
	case ir.ArrayType:
		return valuesToAny(n)
	case ir.ObjectType:
		return fieldsToAny(n)
	case ir.InstanceType:
		if n.MapShaped() {
			return fieldsToAny(n)
		}
		if n.ListShaped() {
			return valuesToAny(n)
		}
		return ir.IdentityToken(n)
	}
	return nil
}

func valuesToAny(n *ir.Node) []any {
	res := make([]any, len(n.Values))
	for i, v := range n.Values {
		res[i] = ToAny(v)
	}
	return res
}

func fieldsToAny(n *ir.Node) map[string]any {
	res := make(map[string]any, len(n.Fields))
	for i, f := range n.Fields {
		if f.Type == ir.NullType {
			continue
		}
		res[f.String] = ToAny(n.Values[i])
	}
	return res
}
