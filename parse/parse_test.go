package parse

import (
	"errors"
	"testing"

	"github.com/tersify/go-tersify/ir"
)

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	n, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse(%q): %v", doc, err)
	}
	return n
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		doc  string
		want func(n *ir.Node) bool
	}{
		{"3", func(n *ir.Node) bool { return n.Type == ir.NumberType && n.Int64 != nil && *n.Int64 == 3 }},
		{"-7", func(n *ir.Node) bool { return n.Type == ir.NumberType && n.Int64 != nil && *n.Int64 == -7 }},
		{"2.5", func(n *ir.Node) bool { return n.Type == ir.NumberType && n.Float64 != nil && *n.Float64 == 2.5 }},
		{"true", func(n *ir.Node) bool { return n.Type == ir.BoolType && n.Bool }},
		{"null", func(n *ir.Node) bool { return n.Type == ir.NullType }},
		{`"hi"`, func(n *ir.Node) bool { return n.Type == ir.StringType && n.String == "hi" }},
	}
	for _, tt := range tests {
		if n := mustParse(t, tt.doc); !tt.want(n) {
			t.Errorf("doc %q parsed to %+v", tt.doc, n)
		}
	}
}

func TestParseContainers(t *testing.T) {
	n := mustParse(t, "a:\n  - 1\n  - x\nb: {}\n")
	if n.Type != ir.ObjectType || len(n.Fields) != 2 {
		t.Fatalf("got %+v", n)
	}
	a := ir.Get(n, "a")
	if a.Type != ir.ArrayType || len(a.Values) != 2 {
		t.Fatalf("field a = %+v", a)
	}
	if b := ir.Get(n, "b"); b.Type != ir.ObjectType || len(b.Values) != 0 {
		t.Fatalf("field b = %+v", b)
	}
}

func TestParseInstance(t *testing.T) {
	n := mustParse(t, `
card:
  $type: bank.Card
  $id: "0x2a"
  Number: "4111"
`)
	card := ir.Get(n, "card")
	if card == nil || card.Type != ir.InstanceType {
		t.Fatalf("card = %+v", card)
	}
	if card.TypeName != "bank.Card" {
		t.Errorf("TypeName = %q", card.TypeName)
	}
	if got := ir.IdentityToken(card); got != "0x2a" {
		t.Errorf("identity = %q", got)
	}
	if !card.MapShaped() {
		t.Errorf("card not map shaped")
	}
	if num := ir.Get(card, "Number"); num == nil || num.String != "4111" {
		t.Errorf("Number = %+v", num)
	}
}

func TestParseOpaqueInstance(t *testing.T) {
	n := mustParse(t, "$type: pkg.Mystery\n$id: 7\n")
	if !n.Opaque() {
		t.Fatalf("got %+v, want opaque instance", n)
	}
	if n.ID != 7 {
		t.Errorf("ID = %d", n.ID)
	}
}

func TestParseJSON(t *testing.T) {
	n := mustParse(t, `{"k": [1, {"$type": "pkg.T", "v": true}]}`)
	arr := ir.Get(n, "k")
	if arr == nil || len(arr.Values) != 2 {
		t.Fatalf("k = %+v", arr)
	}
	inst := arr.Values[1]
	if inst.Type != ir.InstanceType || inst.TypeName != "pkg.T" {
		t.Errorf("instance = %+v", inst)
	}
	if v := ir.Get(inst, "v"); v == nil || !v.Bool {
		t.Errorf("v = %+v", v)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"$type: 12\n",
		"$id: 3\n",
		"$type: pkg.T\n$id: nope\n",
		"$type: pkg.T\n$id: -1\n",
		"k: [unclosed\n",
	}
	for _, doc := range bad {
		_, err := Parse([]byte(doc))
		if err == nil {
			t.Errorf("doc %q: expected error", doc)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("doc %q: error %v not tagged ErrParse", doc, err)
		}
	}
}
