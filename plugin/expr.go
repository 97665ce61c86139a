package plugin

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tersify/go-tersify/fromgo"
	"github.com/tersify/go-tersify/ir"
)

// NewExpr compiles an expression into a plugin handling the given type
// name, so hosts can supply plugin behavior from configuration. The
// expression is evaluated with the instance's internal fields as the
// environment, plus _type and _id for the type name and identity token:
//
//	p, _ := plugin.NewExpr("bank.Card", `"ending " + Number[-4:]`)
func NewExpr(typeName, src string) (Plugin, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling description for %s: %w", typeName, err)
	}
	return &exprPlugin{typeName: typeName, src: src, prg: prg}, nil
}

type exprPlugin struct {
	typeName string
	src      string
	prg      *vm.Program
}

func (p *exprPlugin) Handles() []string {
	return []string{p.typeName}
}

func (p *exprPlugin) String() string {
	return p.typeName + " = " + p.src
}

func (p *exprPlugin) Describe(n *ir.Node) (string, error) {
	env := map[string]any{
		"_type": n.TypeName,
		"_id":   ir.IdentityToken(n),
	}
	if fields, ok := fromgo.ToAny(n).(map[string]any); ok {
		for k, v := range fields {
			if _, taken := env[k]; !taken {
				env[k] = v
			}
		}
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return "", err
	}
	if s, ok := res.(string); ok {
		return s, nil
	}
	return fmt.Sprint(res), nil
}
