package swim

import (
	"errors"
	"time"
)

// ErrProbeTimeout is the error a transport reports when a probe's
// deadline elapsed with no ack or nack. Completions wrap it so callers
// can distinguish a timeout from a delivery failure.
var ErrProbeTimeout = errors.New("probe timed out")

// Payload is an opaque gossip payload produced and consumed by the
// engine. The shell and transport never inspect it.
type Payload []byte

// CompletionFunc receives the outcome of a probe. Exactly one of resp
// and err is set. The transport invokes completions from its own
// goroutines; the shell trampolines them back onto the protocol loop.
type CompletionFunc func(resp PingResponse, err error)

// Peer is a cheap, addressable handle for a node bound to the
// transport. Any two peers for the same node are interchangeable for
// send operations; identity is by Node.
type Peer interface {
	// Node returns the node this peer was constructed from.
	Node() Node

	// Ping probes the peer directly. The completion fires with the
	// ack, or with an error once timeout elapses.
	Ping(payload Payload, from Peer, timeout time.Duration, seqNo uint64, done CompletionFunc)

	// PingRequest asks the peer to probe target on our behalf. The
	// completion fires with the relayed ack or nack, or with an error
	// once timeout elapses.
	PingRequest(target Peer, payload Payload, from Peer, timeout time.Duration, seqNo uint64, done CompletionFunc)

	// Ack answers a probe identified by seqNo, acknowledging target.
	Ack(seqNo uint64, target Peer, incarnation uint64, payload Payload)

	// Nack answers an indirect probe identified by seqNo: target could
	// not be reached on the requester's behalf.
	Nack(seqNo uint64, target Peer)
}

// PeerResolver turns node identities into sendable peer handles. The
// transport implements it; resolving must be cheap and must
// round-trip the node (PeerFor(n).Node() == n).
type PeerResolver interface {
	PeerFor(node Node) Peer
}
