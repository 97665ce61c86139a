package ir

import "strings"

// Summaries are marked with a tag rather than a dedicated node type, so
// a summarized document remains an ordinary scalar/array/object tree. A
// scalar summary is a StringType node holding the one-line summary text;
// a structural summary is the Array or Object node built from a
// summarized instance's internals. Both carry a tag of the form
//
//	!summary(TypeName,0x2a)
//
// naming the original instance type and its identity token.
const summaryTagHead = "!summary"

// SummaryTag composes the marker tag for a summary of the given type
// name and identity token.
func SummaryTag(typeName, identity string) string {
	return summaryTagHead + "(" + typeName + "," + identity + ")"
}

// IsSummary reports whether the node is a summary placeholder produced
// by tersification.
func IsSummary(n *Node) bool {
	if n == nil {
		return false
	}
	return n.Tag == summaryTagHead ||
		strings.HasPrefix(n.Tag, summaryTagHead+"(")
}

// SummaryInfo is the decoded form of a summary marker tag.
type SummaryInfo struct {
	TypeName string
	Identity string
}

// SummaryTagInfo decodes a summary marker tag. The second result is
// false if the tag is not a summary marker.
func SummaryTagInfo(tag string) (SummaryInfo, bool) {
	if !strings.HasPrefix(tag, summaryTagHead+"(") || !strings.HasSuffix(tag, ")") {
		return SummaryInfo{}, false
	}
	args := tag[len(summaryTagHead)+1 : len(tag)-1]
	// type names may contain commas in generic arguments, the identity
	// token never does
	i := strings.LastIndexByte(args, ',')
	if i < 0 {
		return SummaryInfo{}, false
	}
	return SummaryInfo{TypeName: args[:i], Identity: args[i+1:]}, true
}
