package transport

import (
	api "memberd/internal/gen/api"
	"memberd/internal/swim"
)

func nodeToProto(n swim.Node) *api.Node {
	return &api.Node{Addr: n.Addr, Uid: n.UID}
}

func nodeFromProto(p *api.Node) swim.Node {
	if p == nil {
		return swim.Node{}
	}
	return swim.Node{Addr: p.GetAddr(), UID: p.GetUid()}
}

func statusToProto(k swim.StatusKind) api.Status {
	switch k {
	case swim.StatusAlive:
		return api.Status_ALIVE
	case swim.StatusSuspect:
		return api.Status_SUSPECT
	case swim.StatusUnreachable:
		return api.Status_UNREACHABLE
	default:
		return api.Status_DEAD
	}
}

func memberToProto(m swim.Member) *api.MemberState {
	var suspectedBy []uint64
	for uid := range m.Status.SuspectedBy {
		suspectedBy = append(suspectedBy, uid)
	}
	return &api.MemberState{
		Node:        nodeToProto(m.Node),
		Status:      statusToProto(m.Status.Kind),
		Incarnation: m.Status.Incarnation,
		SuspectedBy: suspectedBy,
	}
}
