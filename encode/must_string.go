package encode

import (
	"bytes"
	"fmt"

	"github.com/tersify/go-tersify/fromgo"
	"github.com/tersify/go-tersify/ir"
)

// MustString renders a value to YAML text, falling back to a raw dump
// if conversion or encoding fails. For logs and error messages.
func MustString(v any, opts ...EncodeOption) string {
	node, ok := v.(*ir.Node)
	if !ok {
		var err error
		node, err = fromgo.From(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return buf.String()
}
