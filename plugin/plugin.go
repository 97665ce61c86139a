package plugin

import "github.com/tersify/go-tersify/ir"

// Plugin summarizes instances of the concrete types it declares. How
// plugins are located and constructed is up to the host program; the
// registry only needs the instances.
type Plugin interface {
	// Handles returns the concrete type names this plugin can
	// summarize. Matching is by exact type name only.
	Handles() []string

	// Describe produces a short human-readable description of an
	// instance of a handled type. The string is embedded verbatim in
	// the summary text. An error aborts tersification of the whole
	// document: there is no safe fallback description.
	Describe(n *ir.Node) (string, error)
}

// Func adapts a describe function into a Plugin handling one or more
// type names.
func Func(describe func(n *ir.Node) (string, error), typeNames ...string) Plugin {
	return &funcPlugin{typeNames: typeNames, describe: describe}
}

type funcPlugin struct {
	typeNames []string
	describe  func(n *ir.Node) (string, error)
}

func (p *funcPlugin) Handles() []string {
	return p.typeNames
}

func (p *funcPlugin) Describe(n *ir.Node) (string, error) {
	return p.describe(n)
}
