package ir

import (
	"strconv"
	"sync/atomic"
)

// Instance identities come from a process-wide monotonic counter rather
// than from memory addresses, so they survive copying and can be pinned
// in tests by assigning ID directly.
var idCounter atomic.Uint64

func nextID() uint64 {
	return idCounter.Add(1)
}

// IdentityToken renders an instance's identity the way it appears in
// summary text, e.g. "0x2a".
func IdentityToken(n *Node) string {
	return "0x" + strconv.FormatUint(n.ID, 16)
}
