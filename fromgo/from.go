package fromgo

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/tersify/go-tersify/ir"
)

// From converts an arbitrary Go value into an IR tree. Scalars map to
// scalar nodes, slices and arrays to ArrayType, string- and int-keyed
// maps to ObjectType, and named struct values (and pointers to them) to
// InstanceType nodes whose internal map shape holds the exported
// fields. Values of kinds with no document representation (funcs,
// channels, unexported-only structs) become opaque instances.
//
// Instance nodes keep the source value in Origin so plugins can
// describe it, and get a fresh identity.
func From(v any) (*ir.Node, error) {
	if n, ok := v.(*ir.Node); ok {
		return n, nil
	}
	c := &converter{visited: map[uintptr]bool{}}
	return c.from(reflect.ValueOf(v))
}

type converter struct {
	// visited guards ingestion against self-referential pointers. The
	// traversal engine itself has no cycle handling, so cut cycles off
	// here with an opaque instance.
	visited map[uintptr]bool
}

func (c *converter) from(val reflect.Value) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	switch val.Kind() {
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > 1<<63-1 {
			return &ir.Node{Type: ir.NumberType, Number: strconv.FormatUint(u, 10)}, nil
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return c.fromList(val)
	case reflect.Array:
		return c.fromList(val)
	case reflect.Map:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return c.fromMap(val)
	case reflect.Struct:
		return c.fromStruct(val, val)
	case reflect.Pointer:
		return c.fromPointer(val)
	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return c.from(val.Elem())
	default:
		// funcs, channels, complex numbers, unsafe pointers
		return c.opaque(val), nil
	}
}

func (c *converter) fromList(val reflect.Value) (*ir.Node, error) {
	n := val.Len()
	elems := make([]*ir.Node, n)
	for i := 0; i < n; i++ {
		el, err := c.from(val.Index(i))
		if err != nil {
			return nil, err
		}
		elems[i] = el
	}
	return ir.FromSlice(elems), nil
}

func (c *converter) fromMap(val reflect.Value) (*ir.Node, error) {
	addr := val.Pointer()
	if c.visited[addr] {
		return c.opaque(val), nil
	}
	c.visited[addr] = true
	defer delete(c.visited, addr)

	keys := val.MapKeys()
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, key := range keys {
		keyStr, err := mapKeyString(key)
		if err != nil {
			return nil, err
		}
		v, err := c.from(val.MapIndex(key))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(keyStr), Val: v})
	}
	sort.Slice(kvs, func(i, j int) bool {
		return kvs[i].Key.String < kvs[j].Key.String
	})
	return ir.FromKeyVals(kvs), nil
}

func mapKeyString(key reflect.Value) (string, error) {
	switch key.Kind() {
	case reflect.String:
		return key.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(key.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(key.Uint(), 10), nil
	default:
		return "", fmt.Errorf("unsupported map key kind %s", key.Kind())
	}
}

// fromStruct builds a map-shaped instance from origin's exported
// fields. origin is the value stored on the node, which may be the
// enclosing pointer rather than val itself.
func (c *converter) fromStruct(val, origin reflect.Value) (*ir.Node, error) {
	t := val.Type()
	kvs := make([]ir.KeyVal, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		v, err := c.from(val.Field(i))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(field.Name), Val: v})
	}
	res := ir.NewInstance(t.String())
	res.Fields = make([]*ir.Node, len(kvs))
	res.Values = make([]*ir.Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	if origin.CanInterface() {
		res.Origin = origin.Interface()
	}
	return res, nil
}

func (c *converter) fromPointer(val reflect.Value) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	addr := val.Pointer()
	if c.visited[addr] {
		return c.opaque(val.Elem()), nil
	}
	c.visited[addr] = true
	defer delete(c.visited, addr)

	elem := val.Elem()
	if elem.Kind() == reflect.Struct {
		// the pointer, not the pointee, is what plugins will want
		return c.fromStruct(elem, val)
	}
	return c.from(elem)
}

func (c *converter) opaque(val reflect.Value) *ir.Node {
	res := ir.NewInstance(val.Type().String())
	if val.CanInterface() {
		res.Origin = val.Interface()
	}
	return res
}
