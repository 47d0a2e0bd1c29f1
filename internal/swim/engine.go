package swim

import "time"

// Engine is the SWIM protocol instance the shell drives. All methods
// must be called from the shell's protocol loop; the engine performs
// no I/O and schedules nothing itself. It answers every event with
// directives that the shell executes in emission order.
type Engine interface {
	// OnPing handles an inbound ping from pingOrigin.
	OnPing(pingOrigin Peer, payload Payload, seqNo uint64) []Directive

	// OnPingRequest handles an inbound request to probe target on
	// behalf of pingRequestOrigin.
	OnPingRequest(target Peer, pingRequestOrigin Peer, payload Payload, seqNo uint64) []Directive

	// OnPingResponse handles the outcome of a direct probe. The
	// origin arguments are set iff the probe served an indirect
	// request.
	OnPingResponse(resp PingResponse, pingRequestOrigin Peer, pingRequestSeqNo uint64) []Directive

	// OnEveryPingRequestResponse observes every relay completion of a
	// ping-request fan-out, winning or not. The engine uses this
	// stream for local-health bookkeeping only.
	OnEveryPingRequestResponse(resp PingResponse, member Peer)

	// OnPingRequestResponse handles the single decisive outcome of a
	// ping-request fan-out: the first ack, or the aggregated timeout.
	OnPingRequestResponse(resp PingResponse, member Peer) []Directive

	// OnPeriodicPingTick advances the protocol period and decides
	// what, if anything, to probe this round.
	OnPeriodicPingTick() []Directive

	// Mark applies a status to a member. The boolean is false when
	// the existing status supersedes the new one.
	Mark(peer Peer, status Status) (StatusChange, bool)

	// ConfirmDead forcibly marks a member dead. The boolean is false
	// when the member is already dead or unknown.
	ConfirmDead(peer Peer) (StatusChange, bool)

	// MakeGossipPayload selects the rumors to piggyback on a message
	// to the given peer.
	MakeGossipPayload(to Peer) Payload

	// NextSequenceNumber draws a fresh probe sequence number.
	NextSequenceNumber() uint64

	// Suspects returns the members currently in the suspect state.
	Suspects() []Member

	// AllMembers returns every known member, self included.
	AllMembers() []Member

	// OtherMemberCount returns the number of known members besides
	// self.
	OtherMemberCount() int

	// MemberForNode looks a member up by node, ignoring the UID when
	// the node carries none.
	MemberForNode(node Node) (Member, bool)

	// IsMember reports whether the peer's node is a known member.
	// With ignoreUID set, only the address is compared.
	IsMember(peer Peer, ignoreUID bool) bool

	// SuspicionTimeout returns the suspicion window for a suspect
	// with the given number of independent confirmations.
	SuspicionTimeout(suspectedByCount int) time.Duration

	// ProtocolPeriod returns the current protocol period ordinal.
	ProtocolPeriod() uint64

	// DynamicLHMProtocolInterval returns the protocol period duration
	// stretched by the current local health multiplier.
	DynamicLHMProtocolInterval() time.Duration

	// DynamicLHMPingTimeout returns the ping timeout stretched by the
	// current local health multiplier.
	DynamicLHMPingTimeout() time.Duration

	// Settings returns the settings the engine was created with.
	Settings() Settings
}
