// Package fromgo converts between Go values and the tersify IR.
//
// # Usage
//
//	type User struct {
//	    Name string
//	    Card *CreditCard
//	}
//	node, err := fromgo.From(User{...})
//	// node is a map-shaped instance of type "fromgo_test.User"
//
//	env := fromgo.ToAny(node) // map[string]any for expressions, JSON
//
// Named struct values and pointers to them become InstanceType nodes —
// the typed, identity-bearing objects that tersification summarizes.
// Everything else maps onto plain document shapes.
//
// From guards against self-referential pointers by cutting cycles off
// with opaque instances; the traversal engine itself does not detect
// cycles.
package fromgo
