package plugin

import (
	"strings"
	"testing"

	"github.com/tersify/go-tersify/ir"
)

func TestExprPluginDescribesFields(t *testing.T) {
	p, err := NewExpr("bank.Card", `"ending " + Number[-4:]`)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Handles(); len(got) != 1 || got[0] != "bank.Card" {
		t.Fatalf("Handles() = %v", got)
	}
	n := ir.InstanceFromMap("bank.Card", map[string]*ir.Node{
		"Number": ir.FromString("4111111111111111"),
	})
	desc, err := p.Describe(n)
	if err != nil {
		t.Fatal(err)
	}
	if desc != "ending 1111" {
		t.Errorf("Describe = %q", desc)
	}
}

func TestExprPluginMetaEnv(t *testing.T) {
	p, err := NewExpr("pkg.T", `_type + "#" + _id`)
	if err != nil {
		t.Fatal(err)
	}
	n := ir.NewInstance("pkg.T")
	n.ID = 3
	desc, err := p.Describe(n)
	if err != nil {
		t.Fatal(err)
	}
	if desc != "pkg.T#0x3" {
		t.Errorf("Describe = %q", desc)
	}
}

func TestExprPluginNonStringResult(t *testing.T) {
	p, err := NewExpr("pkg.T", `1 + 2`)
	if err != nil {
		t.Fatal(err)
	}
	desc, err := p.Describe(ir.NewInstance("pkg.T"))
	if err != nil {
		t.Fatal(err)
	}
	if desc != "3" {
		t.Errorf("Describe = %q, want stringified result", desc)
	}
}

func TestExprPluginCompileError(t *testing.T) {
	_, err := NewExpr("pkg.T", `][`)
	if err == nil {
		t.Fatal("compile of invalid expression succeeded")
	}
	if !strings.Contains(err.Error(), "pkg.T") {
		t.Errorf("error %q does not name the type", err)
	}
}

func TestExprPluginRuntimeErrorPropagates(t *testing.T) {
	p, err := NewExpr("pkg.T", `Missing.Field`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Describe(ir.NewInstance("pkg.T")); err == nil {
		t.Fatal("expected runtime error for unknown field")
	}
}
