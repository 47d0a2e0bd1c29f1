package swim

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Node is the stable logical identity of a cluster participant: a
// network address plus a unique identifier minted when the process
// started. A UID of zero is the address-only form, used to detect a
// restarted process reusing the same address.
type Node struct {
	Addr string
	UID  uint64
}

// NewNode returns a Node for addr with a freshly minted UID.
func NewNode(addr string) Node {
	id := uuid.New()
	uid := binary.BigEndian.Uint64(id[:8])
	if uid == 0 {
		uid = 1
	}
	return Node{Addr: addr, UID: uid}
}

// ParseNode parses the textual node form produced by String:
// "addr" or "addr#uid".
func ParseNode(s string) (Node, error) {
	addr, uidStr, found := strings.Cut(strings.TrimSpace(s), "#")
	if addr == "" {
		return Node{}, fmt.Errorf("node address cannot be empty: %q", s)
	}
	if !found {
		return Node{Addr: addr}, nil
	}
	uid, err := strconv.ParseUint(uidStr, 10, 64)
	if err != nil {
		return Node{}, fmt.Errorf("invalid node uid in %q: %w", s, err)
	}
	return Node{Addr: addr, UID: uid}, nil
}

// WithoutUID returns the address-only form of the node.
func (n Node) WithoutUID() Node {
	return Node{Addr: n.Addr}
}

// HasUID reports whether the node carries an exact identity.
func (n Node) HasUID() bool {
	return n.UID != 0
}

func (n Node) String() string {
	if n.UID == 0 {
		return n.Addr
	}
	return fmt.Sprintf("%s#%d", n.Addr, n.UID)
}
