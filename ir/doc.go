// Package ir provides the value representation that tersification
// operates on.
//
// # Overview
//
// A document is a tree of *ir.Node values. Node is a recursive tagged
// union: scalars (null, bool, number, string), composites (array,
// object), and instances — typed, identity-bearing objects foreign to
// the document model, such as Go struct values ingested by fromgo.
//
// Instances are what tersification summarizes. An instance carries a
// concrete type name, an identity token, and optionally the internal
// shape of the object it stands for: list-like (Values), map-like
// (Fields and Values), or opaque (neither).
//
// # Creating nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromMap(map[string]*ir.Node{"key": ir.FromString("value")})
//	inst := ir.InstanceFromMap("pkg.Thing", map[string]*ir.Node{
//	    "field": ir.FromInt(7),
//	})
//
// # Summaries
//
// Tersification replaces instances with summary nodes: plain scalar or
// container nodes tagged with a !summary(TypeName,identity) marker.
// IsSummary and SummaryTagInfo recognize and decode the marker. Because
// summaries are ordinary nodes, a summarized document needs no special
// handling downstream and re-tersifying it is a no-op.
//
// # Identity
//
// Instance identities come from a process-wide counter, rendered as hex
// by IdentityToken. Tests pin identities by setting the exported ID
// field on hand-built nodes.
package ir
