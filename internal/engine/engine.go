package engine

import (
	"math"
	"time"

	"go.uber.org/zap"

	"memberd/internal/loop"
	"memberd/internal/swim"
	"memberd/internal/telemetry"
)

// Engine is the reference SWIM instance. All state is owned by the
// protocol loop that calls it; there is no internal locking.
type Engine struct {
	log      *zap.Logger
	clock    loop.Clock
	settings swim.Settings
	local    swim.Node
	resolver swim.PeerResolver

	incarnation uint64
	seqNo       uint64
	period      uint64
	lhm         int

	members    map[string]*swim.Member
	probeOrder []string
	probeIdx   int

	gossip map[string]*rumor
}

// New creates an engine with self registered alive at incarnation 0.
func New(local swim.Node, settings swim.Settings, resolver swim.PeerResolver, clock loop.Clock, log *zap.Logger) *Engine {
	e := &Engine{
		log:      log,
		clock:    clock,
		settings: settings,
		local:    local,
		resolver: resolver,
		members:  make(map[string]*swim.Member),
		gossip:   make(map[string]*rumor),
	}
	self := swim.Member{Node: local, Status: swim.AliveStatus(0)}
	e.members[local.Addr] = &self
	e.enqueueRumor(self)
	return e
}

// OnPing answers a direct probe: apply the piggybacked gossip, learn
// the pinger, acknowledge with self.
func (e *Engine) OnPing(pingOrigin swim.Peer, payload swim.Payload, seqNo uint64) []swim.Directive {
	dirs := e.processGossip(payload)
	if change, applied := e.apply(pingOrigin.Node(), swim.AliveStatus(0)); applied {
		dirs = append(dirs, swim.GossipProcessedDirective{Gossip: swim.GossipApplied{Change: change}})
	}
	dirs = append(dirs, swim.SendAckDirective{
		Incarnation: e.incarnation,
		Payload:     e.MakeGossipPayload(pingOrigin),
		SeqNo:       seqNo,
	})
	return dirs
}

// OnPingRequest answers a relay request: probe target on the
// requester's behalf.
func (e *Engine) OnPingRequest(target swim.Peer, pingRequestOrigin swim.Peer, payload swim.Payload, seqNo uint64) []swim.Directive {
	dirs := e.processGossip(payload)
	if change, applied := e.apply(pingRequestOrigin.Node(), swim.AliveStatus(0)); applied {
		dirs = append(dirs, swim.GossipProcessedDirective{Gossip: swim.GossipApplied{Change: change}})
	}
	dirs = append(dirs, swim.SendPingDirective{
		Target:            target,
		PingRequestOrigin: pingRequestOrigin,
		PingRequestSeqNo:  seqNo,
		Timeout:           e.DynamicLHMPingTimeout(),
		SeqNo:             e.NextSequenceNumber(),
	})
	return dirs
}

// OnPingResponse handles the outcome of a direct probe. An ack marks
// the target alive and, for relayed probes, is forwarded to the
// requester. A timeout on our own probe escalates to an indirect
// fan-out; a timeout on a relayed probe answers the requester with a
// nack.
func (e *Engine) OnPingResponse(resp swim.PingResponse, pingRequestOrigin swim.Peer, pingRequestSeqNo uint64) []swim.Directive {
	switch r := resp.(type) {
	case swim.AckResponse:
		e.lhmDecrement()
		dirs := e.processGossip(r.Payload)
		if change, applied := e.apply(r.Target.Node(), swim.AliveStatus(r.Incarnation)); applied {
			dirs = append(dirs, swim.GossipProcessedDirective{Gossip: swim.GossipApplied{Change: change}})
		}
		if pingRequestOrigin != nil {
			dirs = append(dirs, swim.SendAckDirective{
				To:          pingRequestOrigin,
				Target:      r.Target,
				Incarnation: r.Incarnation,
				Payload:     e.MakeGossipPayload(pingRequestOrigin),
				SeqNo:       pingRequestSeqNo,
			})
		}
		return dirs

	case swim.TimeoutResponse:
		e.lhmIncrement()
		if pingRequestOrigin != nil {
			return []swim.Directive{swim.SendNackDirective{
				To:     pingRequestOrigin,
				Target: r.Target,
				SeqNo:  pingRequestSeqNo,
			}}
		}
		relays := e.pickRelays(r.Target.Node(), e.settings.IndirectProbeCount)
		if len(relays) == 0 {
			return e.suspectDirectives(r.Target)
		}
		details := make([]swim.PingRequestDetail, 0, len(relays))
		for _, relay := range relays {
			relayPeer := e.resolver.PeerFor(relay.Node)
			details = append(details, swim.PingRequestDetail{
				Peer:    relayPeer,
				Payload: e.MakeGossipPayload(relayPeer),
				SeqNo:   e.NextSequenceNumber(),
			})
		}
		return []swim.Directive{swim.SendPingRequestsDirective{
			Target:   r.Target,
			Timeout:  e.DynamicLHMPingTimeout(),
			Requests: details,
		}}

	default:
		return []swim.Directive{swim.IgnoreDirective{Reason: "unexpected direct ping response"}}
	}
}

// OnEveryPingRequestResponse adjusts local health from the full relay
// completion stream. Acks restore confidence; timeouts erode it.
func (e *Engine) OnEveryPingRequestResponse(resp swim.PingResponse, member swim.Peer) {
	switch resp.(type) {
	case swim.AckResponse:
		e.lhmDecrement()
	case swim.TimeoutResponse:
		e.lhmIncrement()
	}
}

// OnPingRequestResponse handles the decisive outcome of an indirect
// fan-out: the winning ack, or the aggregated timeout.
func (e *Engine) OnPingRequestResponse(resp swim.PingResponse, member swim.Peer) []swim.Directive {
	switch r := resp.(type) {
	case swim.AckResponse:
		dirs := e.processGossip(r.Payload)
		if change, applied := e.apply(member.Node(), swim.AliveStatus(r.Incarnation)); applied {
			if change.Previous != nil {
				dirs = append(dirs, swim.AliveDirective{Previous: *change.Previous, Member: change.Member})
			} else {
				dirs = append(dirs, swim.GossipProcessedDirective{Gossip: swim.GossipApplied{Change: change}})
			}
		}
		return dirs

	case swim.NackResponse:
		return []swim.Directive{swim.NackReceivedDirective{}}

	case swim.TimeoutResponse:
		return e.suspectDirectives(member)

	default:
		return []swim.Directive{swim.IgnoreDirective{Reason: "unexpected ping request response"}}
	}
}

// OnPeriodicPingTick advances the protocol period and probes the next
// member in the shuffled round-robin order.
func (e *Engine) OnPeriodicPingTick() []swim.Directive {
	e.period++
	target, ok := e.nextProbeTarget()
	if !ok {
		return []swim.Directive{swim.IgnoreDirective{Reason: "no members to probe"}}
	}
	return []swim.Directive{swim.SendPingDirective{
		Target:  e.resolver.PeerFor(target.Node),
		Timeout: e.DynamicLHMPingTimeout(),
		SeqNo:   e.NextSequenceNumber(),
	}}
}

// suspectDirectives begins suspecting target after its probes failed.
func (e *Engine) suspectDirectives(target swim.Peer) []swim.Directive {
	member, ok := e.members[target.Node().Addr]
	if !ok {
		return nil
	}
	status := swim.SuspectStatus(member.Status.Incarnation, e.local.UID)
	change, applied := e.apply(member.Node, status)
	if !applied {
		return nil
	}
	if change.Previous == nil || change.Previous.Kind != swim.StatusSuspect {
		e.log.Info("member suspected",
			zap.String("member", change.Member.Node.String()),
			zap.Uint64("incarnation", change.Member.Status.Incarnation))
	}
	prev := swim.AliveStatus(0)
	if change.Previous != nil {
		prev = *change.Previous
	}
	return []swim.Directive{swim.NewlySuspectDirective{Previous: prev, Suspect: change.Member}}
}

// NextSequenceNumber draws a fresh probe sequence number, never zero.
func (e *Engine) NextSequenceNumber() uint64 {
	e.seqNo++
	return e.seqNo
}

// ProtocolPeriod returns the current protocol period ordinal.
func (e *Engine) ProtocolPeriod() uint64 {
	return e.period
}

// DynamicLHMProtocolInterval stretches the protocol period by the
// current local health multiplier.
func (e *Engine) DynamicLHMProtocolInterval() time.Duration {
	return e.settings.ProtocolPeriod * time.Duration(1+e.lhm)
}

// DynamicLHMPingTimeout stretches the ping timeout by the current
// local health multiplier.
func (e *Engine) DynamicLHMPingTimeout() time.Duration {
	return e.settings.PingTimeout * time.Duration(1+e.lhm)
}

// Settings returns the settings the engine was created with.
func (e *Engine) Settings() swim.Settings {
	return e.settings
}

// Incarnation returns the local node's current incarnation.
func (e *Engine) Incarnation() uint64 {
	return e.incarnation
}

// LocalHealthMultiplier returns the current local health multiplier.
func (e *Engine) LocalHealthMultiplier() int {
	return e.lhm
}

func (e *Engine) lhmIncrement() {
	if e.lhm < e.settings.MaxLocalHealthMultiplier {
		e.lhm++
	}
	telemetry.LocalHealthMultiplier.Set(float64(e.lhm))
}

func (e *Engine) lhmDecrement() {
	if e.lhm > 0 {
		e.lhm--
	}
	telemetry.LocalHealthMultiplier.Set(float64(e.lhm))
}

func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}
