package ir

import (
	"testing"
)

func TestFromMapSortsKeys(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	if n.Type != ObjectType {
		t.Fatalf("got type %s", n.Type)
	}
	want := []string{"a", "b", "c"}
	for i, f := range n.Fields {
		if f.String != want[i] {
			t.Errorf("field %d: got %q, want %q", i, f.String, want[i])
		}
	}
}

func TestInstanceShapes(t *testing.T) {
	tests := []struct {
		name                    string
		n                       *Node
		mapShaped, listShaped   bool
		opaque                  bool
	}{
		{"opaque", NewInstance("T"), false, false, true},
		{"list", InstanceFromSlice("T", []*Node{FromInt(1)}), false, true, false},
		{"map", InstanceFromMap("T", map[string]*Node{"a": FromInt(1)}), true, false, false},
		{"non-instance", FromMap(map[string]*Node{"a": FromInt(1)}), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.MapShaped(); got != tt.mapShaped {
				t.Errorf("MapShaped() = %v, want %v", got, tt.mapShaped)
			}
			if got := tt.n.ListShaped(); got != tt.listShaped {
				t.Errorf("ListShaped() = %v, want %v", got, tt.listShaped)
			}
			if got := tt.n.Opaque(); got != tt.opaque {
				t.Errorf("Opaque() = %v, want %v", got, tt.opaque)
			}
		})
	}
}

func TestInstanceIdentity(t *testing.T) {
	a := NewInstance("T")
	b := NewInstance("T")
	if a.ID == b.ID {
		t.Fatalf("two instances share ID %d", a.ID)
	}
	if a.ID == 0 || b.ID == 0 {
		t.Fatalf("instance without identity: %d, %d", a.ID, b.ID)
	}
	n := &Node{Type: InstanceType, TypeName: "T", ID: 42}
	if got := IdentityToken(n); got != "0x2a" {
		t.Errorf("IdentityToken = %q, want %q", got, "0x2a")
	}
}

func TestGetAndToMap(t *testing.T) {
	n := InstanceFromMap("T", map[string]*Node{
		"x": FromString("ex"),
		"y": FromInt(7),
	})
	if got := Get(n, "x"); got == nil || got.String != "ex" {
		t.Errorf("Get(x) = %v", got)
	}
	if got := Get(n, "z"); got != nil {
		t.Errorf("Get(z) = %v, want nil", got)
	}
	m := ToMap(n)
	if len(m) != 2 || m["y"] == nil || *m["y"].Int64 != 7 {
		t.Errorf("ToMap = %v", m)
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("ToMap on scalar should be nil")
	}
}

func TestCloneIsDeepAndEqual(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"list": FromSlice([]*Node{FromInt(1), FromString("two")}),
		"inst": InstanceFromMap("pkg.T", map[string]*Node{"a": FromBool(true)}),
	})
	cl := orig.Clone()
	if cl == orig {
		t.Fatal("clone is the same pointer")
	}
	if Compare(orig, cl) != 0 {
		t.Fatal("clone differs structurally")
	}
	// mutating the clone must not touch the original
	cl.Values[0].Values[0] = FromInt(99)
	if Compare(orig, cl) == 0 {
		t.Fatal("clone shares children with original")
	}
	// identity carries over
	inst := Get(orig, "inst")
	instCl := Get(cl, "inst")
	if inst.ID != instCl.ID {
		t.Errorf("clone changed identity: %d != %d", inst.ID, instCl.ID)
	}
}

func TestVisit(t *testing.T) {
	n := FromSlice([]*Node{
		FromInt(1),
		FromSlice([]*Node{FromInt(2), FromInt(3)}),
	})
	var pre, post int
	err := n.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d, want 5/5", pre, post)
	}
}
