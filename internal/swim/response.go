package swim

import "time"

// PingResponse is the outcome of a probe: an ack or nack from the wire,
// or a timeout fabricated by the shell when nothing came back.
type PingResponse interface {
	isPingResponse()
	// ResponseSeqNo is the sequence number the response correlates to.
	ResponseSeqNo() uint64
}

// AckResponse acknowledges a probe. Target is the member being
// acknowledged (for direct pings, the pinged peer itself; for relayed
// probes, the target the relay reached on our behalf).
type AckResponse struct {
	Target      Peer
	Incarnation uint64
	Payload     Payload
	SeqNo       uint64
}

// NackResponse is a relay's negative response: the relay was reachable
// but could not reach the target.
type NackResponse struct {
	Target Peer
	SeqNo  uint64
}

// TimeoutResponse is fabricated by the shell when a probe produced no
// response within its deadline. PingRequestOrigin is non-nil iff the
// timed-out probe was serving an indirect request.
type TimeoutResponse struct {
	Target            Peer
	PingRequestOrigin Peer
	Timeout           time.Duration
	SeqNo             uint64
}

func (AckResponse) isPingResponse()     {}
func (NackResponse) isPingResponse()    {}
func (TimeoutResponse) isPingResponse() {}

func (r AckResponse) ResponseSeqNo() uint64     { return r.SeqNo }
func (r NackResponse) ResponseSeqNo() uint64    { return r.SeqNo }
func (r TimeoutResponse) ResponseSeqNo() uint64 { return r.SeqNo }
