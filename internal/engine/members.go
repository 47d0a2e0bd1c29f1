package engine

import (
	"math/rand"
	"sort"
	"time"

	"memberd/internal/swim"
)

// apply merges a status observation for node into the member table.
// The boolean is false when the existing status supersedes the new
// one. Members are keyed by address; the UID distinguishes process
// restarts at the same address.
func (e *Engine) apply(node swim.Node, status swim.Status) (swim.StatusChange, bool) {
	existing, ok := e.members[node.Addr]
	if !ok {
		m := swim.Member{Node: node, Status: status, ProtocolPeriod: e.period}
		if status.Kind == swim.StatusSuspect {
			m.SuspicionStartedAt = e.clock.Now()
		}
		e.members[node.Addr] = &m
		e.rebuildProbeOrder()
		e.enqueueRumor(m)
		return swim.StatusChange{Member: m}, true
	}

	if node.HasUID() && existing.Node.HasUID() && node.UID != existing.Node.UID {
		// The process at this address restarted. The old incarnation
		// chain does not apply to the new process.
		prev := existing.Status
		*existing = swim.Member{Node: node, Status: status, ProtocolPeriod: e.period}
		if status.Kind == swim.StatusSuspect {
			existing.SuspicionStartedAt = e.clock.Now()
		}
		e.enqueueRumor(*existing)
		return swim.StatusChange{Previous: &prev, Member: *existing}, true
	}

	if status.Kind == swim.StatusSuspect && existing.Status.Kind == swim.StatusSuspect &&
		status.Incarnation == existing.Status.Incarnation {
		// Same suspicion, possibly new confirmations: merge the sets.
		prev := existing.Status
		prev.SuspectedBy = make(map[uint64]struct{}, len(existing.Status.SuspectedBy))
		for uid := range existing.Status.SuspectedBy {
			prev.SuspectedBy[uid] = struct{}{}
		}
		added := false
		for uid := range status.SuspectedBy {
			if _, seen := existing.Status.SuspectedBy[uid]; !seen {
				existing.Status.SuspectedBy[uid] = struct{}{}
				added = true
			}
		}
		if !added {
			return swim.StatusChange{}, false
		}
		e.enqueueRumor(*existing)
		return swim.StatusChange{Previous: &prev, Member: *existing}, true
	}

	if !status.Supersedes(existing.Status) {
		return swim.StatusChange{}, false
	}

	prev := existing.Status
	if status.Kind == swim.StatusSuspect && prev.Kind != swim.StatusSuspect {
		existing.SuspicionStartedAt = e.clock.Now()
	}
	existing.Status = status
	existing.ProtocolPeriod = e.period
	if !status.IsReachable() {
		e.rebuildProbeOrder()
	}
	e.enqueueRumor(*existing)
	return swim.StatusChange{Previous: &prev, Member: *existing}, true
}

// Mark applies a status to a member.
func (e *Engine) Mark(peer swim.Peer, status swim.Status) (swim.StatusChange, bool) {
	return e.apply(peer.Node(), status)
}

// ConfirmDead forcibly marks a member dead.
func (e *Engine) ConfirmDead(peer swim.Peer) (swim.StatusChange, bool) {
	existing, ok := e.members[peer.Node().Addr]
	if !ok || existing.Status.Kind == swim.StatusDead {
		return swim.StatusChange{}, false
	}
	prev := existing.Status
	existing.Status = swim.DeadStatus()
	existing.ProtocolPeriod = e.period
	e.rebuildProbeOrder()
	e.enqueueRumor(*existing)
	return swim.StatusChange{Previous: &prev, Member: *existing}, true
}

// Suspects returns the members currently under suspicion.
func (e *Engine) Suspects() []swim.Member {
	var suspects []swim.Member
	for _, m := range e.members {
		if m.Status.Kind == swim.StatusSuspect {
			suspects = append(suspects, *m)
		}
	}
	return suspects
}

// AllMembers returns every known member, self included, in address
// order.
func (e *Engine) AllMembers() []swim.Member {
	members := make([]swim.Member, 0, len(e.members))
	for _, m := range e.members {
		members = append(members, *m)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].Node.Addr < members[j].Node.Addr
	})
	return members
}

// OtherMemberCount returns the number of known members besides self.
func (e *Engine) OtherMemberCount() int {
	n := len(e.members)
	if _, ok := e.members[e.local.Addr]; ok {
		n--
	}
	return n
}

// MemberForNode looks a member up by node, ignoring the UID when the
// node carries none.
func (e *Engine) MemberForNode(node swim.Node) (swim.Member, bool) {
	m, ok := e.members[node.Addr]
	if !ok {
		return swim.Member{}, false
	}
	if node.HasUID() && m.Node.HasUID() && node.UID != m.Node.UID {
		return swim.Member{}, false
	}
	return *m, true
}

// IsMember reports whether the peer's node is known. With ignoreUID
// set, only the address is compared.
func (e *Engine) IsMember(peer swim.Peer, ignoreUID bool) bool {
	node := peer.Node()
	m, ok := e.members[node.Addr]
	if !ok {
		return false
	}
	if ignoreUID || !node.HasUID() || !m.Node.HasUID() {
		return true
	}
	return m.Node.UID == node.UID
}

// rebuildProbeOrder reshuffles the probe ring from the currently
// reachable members.
func (e *Engine) rebuildProbeOrder() {
	e.probeOrder = e.probeOrder[:0]
	for addr, m := range e.members {
		if addr == e.local.Addr || !m.Status.IsReachable() {
			continue
		}
		e.probeOrder = append(e.probeOrder, addr)
	}
	rand.Shuffle(len(e.probeOrder), func(i, j int) {
		e.probeOrder[i], e.probeOrder[j] = e.probeOrder[j], e.probeOrder[i]
	})
	e.probeIdx = 0
}

// nextProbeTarget returns the next member in the shuffled round-robin
// probe order, or false when there is nobody to probe.
func (e *Engine) nextProbeTarget() (swim.Member, bool) {
	for attempts := 0; attempts < 2; attempts++ {
		for e.probeIdx < len(e.probeOrder) {
			addr := e.probeOrder[e.probeIdx]
			e.probeIdx++
			m, ok := e.members[addr]
			if ok && m.Status.IsReachable() {
				return *m, true
			}
		}
		e.rebuildProbeOrder()
		if len(e.probeOrder) == 0 {
			return swim.Member{}, false
		}
	}
	return swim.Member{}, false
}

// pickRelays selects up to k reachable members, excluding self and the
// probe target, to relay an indirect probe.
func (e *Engine) pickRelays(target swim.Node, k int) []swim.Member {
	candidates := make([]swim.Member, 0, len(e.members))
	for addr, m := range e.members {
		if addr == e.local.Addr || addr == target.Addr || !m.Status.IsReachable() {
			continue
		}
		candidates = append(candidates, *m)
	}
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// SuspicionTimeout interpolates the suspicion window between the
// configured ceiling and floor: the more independent confirmations a
// suspicion has, the shorter the window.
func (e *Engine) SuspicionTimeout(suspectedByCount int) time.Duration {
	lo := e.settings.SuspicionTimeoutMin
	hi := e.settings.SuspicionTimeoutMax
	n := e.OtherMemberCount()
	if n < 1 {
		n = 1
	}
	frac := logBase(float64(suspectedByCount)+1, float64(n)+1)
	if frac > 1 {
		frac = 1
	}
	d := hi - time.Duration(frac*float64(hi-lo))
	if d < lo {
		d = lo
	}
	return d
}
