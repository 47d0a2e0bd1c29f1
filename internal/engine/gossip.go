package engine

import (
	"sort"

	"github.com/golang/protobuf/proto"
	"go.uber.org/zap"

	api "memberd/internal/gen/api"
	"memberd/internal/swim"
)

// rumor is one member state waiting to be piggybacked, with the number
// of times it has already been transmitted.
type rumor struct {
	state         swim.Member
	transmissions int
}

// enqueueRumor replaces any queued rumor about the member with its
// latest state and resets the transmission budget.
func (e *Engine) enqueueRumor(m swim.Member) {
	e.gossip[m.Node.Addr] = &rumor{state: m}
}

// MakeGossipPayload selects up to the configured piggyback budget of
// rumors, least-transmitted first, and encodes them. Rumors that have
// exhausted their transmission budget are dropped from the queue.
func (e *Engine) MakeGossipPayload(to swim.Peer) swim.Payload {
	if len(e.gossip) == 0 {
		return nil
	}
	queued := make([]*rumor, 0, len(e.gossip))
	for _, r := range e.gossip {
		queued = append(queued, r)
	}
	sort.Slice(queued, func(i, j int) bool {
		if queued[i].transmissions != queued[j].transmissions {
			return queued[i].transmissions < queued[j].transmissions
		}
		return queued[i].state.Node.Addr < queued[j].state.Node.Addr
	})
	if len(queued) > e.settings.GossipMaxPiggyback {
		queued = queued[:e.settings.GossipMaxPiggyback]
	}

	pb := &api.GossipPayload{Members: make([]*api.MemberState, 0, len(queued))}
	for _, r := range queued {
		pb.Members = append(pb.Members, memberStateToProto(r.state))
		r.transmissions++
		if r.transmissions >= e.settings.GossipMaxTransmissions {
			delete(e.gossip, r.state.Node.Addr)
		}
	}

	data, err := proto.Marshal(pb)
	if err != nil {
		e.log.DPanic("failed to encode gossip payload", zap.Error(err))
		return nil
	}
	return data
}

// processGossip decodes a piggybacked payload and merges every rumor,
// answering one gossip-processed directive per rumor. Rumors about
// self that claim anything but alive are refuted with a higher
// incarnation.
func (e *Engine) processGossip(payload swim.Payload) []swim.Directive {
	if len(payload) == 0 {
		return nil
	}
	var pb api.GossipPayload
	if err := proto.Unmarshal(payload, &pb); err != nil {
		e.log.Warn("undecodable gossip payload", zap.Error(err))
		return []swim.Directive{swim.GossipProcessedDirective{
			Gossip: swim.GossipIgnored{Reason: "undecodable payload"},
		}}
	}
	dirs := make([]swim.Directive, 0, len(pb.GetMembers()))
	for _, state := range pb.GetMembers() {
		node := swim.Node{Addr: state.GetNode().GetAddr(), UID: state.GetNode().GetUid()}
		status := statusFromProto(state)
		if node.WithoutUID() == e.local.WithoutUID() {
			dirs = append(dirs, e.processSelfGossip(node, status))
			continue
		}
		change, applied := e.apply(node, status)
		if !applied {
			dirs = append(dirs, swim.GossipProcessedDirective{Gossip: swim.GossipIgnored{}})
			continue
		}
		dirs = append(dirs, swim.GossipProcessedDirective{Gossip: swim.GossipApplied{Change: change}})
	}
	return dirs
}

func (e *Engine) processSelfGossip(node swim.Node, status swim.Status) swim.Directive {
	if node.HasUID() && node.UID != e.local.UID {
		return swim.GossipProcessedDirective{
			Gossip: swim.GossipIgnored{Reason: "rumor about a previous process at our address"},
		}
	}
	if status.Kind == swim.StatusAlive || status.Incarnation < e.incarnation {
		return swim.GossipProcessedDirective{Gossip: swim.GossipIgnored{}}
	}
	// Someone thinks we are suspect or worse: refute with a higher
	// incarnation and re-gossip ourselves.
	e.incarnation = status.Incarnation + 1
	self := e.members[e.local.Addr]
	self.Status = swim.AliveStatus(e.incarnation)
	e.enqueueRumor(*self)
	e.log.Debug("refuted rumor about self",
		zap.Stringer("rumor", status),
		zap.Uint64("incarnation", e.incarnation))
	return swim.GossipProcessedDirective{Gossip: swim.GossipIgnored{Reason: "refuted rumor about self"}}
}

func memberStateToProto(m swim.Member) *api.MemberState {
	var suspectedBy []uint64
	for uid := range m.Status.SuspectedBy {
		suspectedBy = append(suspectedBy, uid)
	}
	sort.Slice(suspectedBy, func(i, j int) bool { return suspectedBy[i] < suspectedBy[j] })
	var kind api.Status
	switch m.Status.Kind {
	case swim.StatusAlive:
		kind = api.Status_ALIVE
	case swim.StatusSuspect:
		kind = api.Status_SUSPECT
	case swim.StatusUnreachable:
		kind = api.Status_UNREACHABLE
	default:
		kind = api.Status_DEAD
	}
	return &api.MemberState{
		Node:        &api.Node{Addr: m.Node.Addr, Uid: m.Node.UID},
		Status:      kind,
		Incarnation: m.Status.Incarnation,
		SuspectedBy: suspectedBy,
	}
}

func statusFromProto(state *api.MemberState) swim.Status {
	switch state.GetStatus() {
	case api.Status_ALIVE:
		return swim.AliveStatus(state.GetIncarnation())
	case api.Status_SUSPECT:
		return swim.SuspectStatus(state.GetIncarnation(), state.GetSuspectedBy()...)
	case api.Status_UNREACHABLE:
		return swim.UnreachableStatus(state.GetIncarnation())
	default:
		return swim.DeadStatus()
	}
}
