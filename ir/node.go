package ir

import (
	"maps"
	"slices"
)

// Node is a single value in a tersify document. The Type field selects
// which of the remaining fields are meaningful, making Node a recursive
// tagged union.
//
// For ObjectType, Fields[i] is the key node for the value at Values[i];
// both slices always have equal length and keys are StringType. For
// ArrayType only Values is populated. InstanceType nodes reuse the same
// slots for their internal shape: Fields+Values for a map-like instance,
// Values alone for a list-like one, and neither for an opaque one.
//
// Nodes have no parent links. Tersification shares unchanged subtrees
// between input and output by pointer, which upward links would break.
type Node struct {
	Type Type
	Tag  string

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	Fields []*Node
	Values []*Node

	// TypeName and ID are set on InstanceType nodes only. ID is the
	// instance's identity: unique among live instances, stable for the
	// instance's lifetime. Origin optionally carries the Go value the
	// instance was built from, for plugins that describe it.
	TypeName string
	ID       uint64
	Origin   any
}

func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(elems []*Node) *Node {
	return &Node{Type: ArrayType, Values: elems}
}

// FromMap builds an ObjectType node with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, m[key])
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an ObjectType node preserving the given key order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// NewInstance returns an opaque InstanceType node with a fresh identity.
// Use the Instance* constructors for shaped instances.
func NewInstance(typeName string) *Node {
	return &Node{Type: InstanceType, TypeName: typeName, ID: nextID()}
}

// InstanceFromMap returns a map-shaped instance of the given type whose
// internal keys appear in sorted order.
func InstanceFromMap(typeName string, m map[string]*Node) *Node {
	res := FromMap(m)
	res.Type = InstanceType
	res.TypeName = typeName
	res.ID = nextID()
	return res
}

// InstanceFromSlice returns a list-shaped instance of the given type.
func InstanceFromSlice(typeName string, elems []*Node) *Node {
	return &Node{
		Type:     InstanceType,
		TypeName: typeName,
		ID:       nextID(),
		Values:   elems,
	}
}

// MapShaped reports whether an instance has map-like internals.
func (n *Node) MapShaped() bool {
	return n.Type == InstanceType && len(n.Fields) != 0
}

// ListShaped reports whether an instance has list-like internals.
func (n *Node) ListShaped() bool {
	return n.Type == InstanceType && len(n.Fields) == 0 && len(n.Values) != 0
}

// Opaque reports whether an instance has internals unknown to this
// package. Opaque instances without a plugin pass through tersification
// untouched.
func (n *Node) Opaque() bool {
	return n.Type == InstanceType && len(n.Fields) == 0 && len(n.Values) == 0
}

// Get returns the value at a string field of an Object or map-shaped
// Instance node, or nil.
func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

// ToMap returns the field map of an Object or map-shaped Instance node,
// or nil for any other node.
func ToMap(n *Node) map[string]*Node {
	if n.Type != ObjectType && !n.MapShaped() {
		return nil
	}
	res := make(map[string]*Node, len(n.Fields))
	for i, field := range n.Fields {
		if field.Type == NullType {
			continue
		}
		res[field.String] = n.Values[i]
	}
	return res
}

// Clone deep-copies a node. Instance identities and origins are carried
// over: a clone summarizes the same way the original does.
func (n *Node) Clone() *Node {
	return n.CloneTo(&Node{})
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Tag = n.Tag
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Number = n.Number
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	dst.TypeName = n.TypeName
	dst.ID = n.ID
	dst.Origin = n.Origin
	if n.Fields != nil {
		dst.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit walks the node tree in depth-first order, calling f before and
// after each node's children. Returning false from the pre call skips
// the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
