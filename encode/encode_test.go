package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tersify/go-tersify/ir"
)

func render(t *testing.T, n *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeYAML(t *testing.T) {
	inst := ir.InstanceFromMap("pkg.Card", map[string]*ir.Node{
		"Number": ir.FromString("4111"),
	})
	inst.ID = 0x2a
	doc := ir.FromMap(map[string]*ir.Node{
		"name": ir.FromString("ada"),
		"nums": ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5)}),
		"card": inst,
		"none": ir.Null(),
	})
	want := `card: !instance(pkg.Card,0x2a)
  Number: "4111"
name: ada
none: null
nums:
  - 1
  - 2.5
`
	if diff := cmp.Diff(want, render(t, doc)); diff != "" {
		t.Errorf("yaml (-want +got):\n%s", diff)
	}
}

func TestEncodeSummaryMarker(t *testing.T) {
	sum := ir.FromString("pkg.Card (0x2a) ending 1111").
		WithTag(ir.SummaryTag("pkg.Card", "0x2a"))
	doc := ir.FromMap(map[string]*ir.Node{"card": sum})
	want := "card: !summary(pkg.Card,0x2a) pkg.Card (0x2a) ending 1111\n"
	if diff := cmp.Diff(want, render(t, doc)); diff != "" {
		t.Errorf("summary (-want +got):\n%s", diff)
	}
}

func TestEncodeOpaqueInstance(t *testing.T) {
	opaque := ir.NewInstance("pkg.Mystery")
	opaque.ID = 1
	doc := ir.FromSlice([]*ir.Node{opaque})
	want := "- !instance(pkg.Mystery,0x1)\n"
	if diff := cmp.Diff(want, render(t, doc)); diff != "" {
		t.Errorf("opaque (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	doc := ir.FromMap(map[string]*ir.Node{
		"a": ir.FromSlice(nil),
		"b": ir.FromKeyVals(nil),
	})
	want := "a: []\nb: {}\n"
	if diff := cmp.Diff(want, render(t, doc)); diff != "" {
		t.Errorf("empty (-want +got):\n%s", diff)
	}
}

func TestEncodeQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "- plain\n"},
		{"", "- \"\"\n"},
		{"true", "- \"true\"\n"},
		{"12", "- \"12\"\n"},
		{"a: b", "- \"a: b\"\n"},
		{"line\nbreak", "- \"line\\nbreak\"\n"},
	}
	for _, tt := range tests {
		doc := ir.FromSlice([]*ir.Node{ir.FromString(tt.in)})
		if got := render(t, doc); got != tt.want {
			t.Errorf("string %q rendered %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	inst := ir.InstanceFromMap("pkg.Card", map[string]*ir.Node{
		"Number": ir.FromString("4111"),
	})
	doc := ir.FromMap(map[string]*ir.Node{
		"card": inst,
		"n":    ir.FromInt(3),
	})
	want := `{"card":{"Number":"4111"},"n":3}` + "\n"
	if diff := cmp.Diff(want, render(t, doc, EncodeFormat(JSONFormat))); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}
}

func TestEncodeNestedBlocks(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{
		ir.FromMap(map[string]*ir.Node{
			"a": ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
		}),
	})
	want := `-
  a:
    - 1
`
	if diff := cmp.Diff(want, render(t, doc)); diff != "" {
		t.Errorf("nested (-want +got):\n%s", diff)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromString("x")); got != "x\n" {
		t.Errorf("MustString node = %q", got)
	}
	if got := MustString(map[string]any{"k": int64(1)}); got != "k: 1\n" {
		t.Errorf("MustString go value = %q", got)
	}
}
