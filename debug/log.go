package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tersify/go-tersify/ir"
)

// Logf writes a debug line to stderr. IR node arguments render as their
// type, tag and identity rather than as raw struct dumps.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = nodeLabel(x)
		case map[string]any, []any:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func nodeLabel(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	label := n.Type.String()
	if n.Type == ir.InstanceType {
		label += " " + n.TypeName + " " + ir.IdentityToken(n)
	}
	if n.Tag != "" {
		label += " " + n.Tag
	}
	return label
}
