package swim

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// StatusKind is the membership state of a node.
type StatusKind uint8

const (
	StatusAlive StatusKind = iota
	StatusSuspect
	StatusUnreachable
	StatusDead
)

// String returns the string representation of StatusKind.
func (k StatusKind) String() string {
	switch k {
	case StatusAlive:
		return "ALIVE"
	case StatusSuspect:
		return "SUSPECT"
	case StatusUnreachable:
		return "UNREACHABLE"
	case StatusDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Status is a member status together with the incarnation it was
// observed at. Dead carries no incarnation. SuspectedBy is the set of
// node UIDs that independently suspect the member; it is only set for
// StatusSuspect.
type Status struct {
	Kind        StatusKind
	Incarnation uint64
	SuspectedBy map[uint64]struct{}
}

// AliveStatus returns an alive status at the given incarnation.
func AliveStatus(incarnation uint64) Status {
	return Status{Kind: StatusAlive, Incarnation: incarnation}
}

// SuspectStatus returns a suspect status at the given incarnation,
// suspected by the given node UIDs.
func SuspectStatus(incarnation uint64, suspectedBy ...uint64) Status {
	set := make(map[uint64]struct{}, len(suspectedBy))
	for _, uid := range suspectedBy {
		set[uid] = struct{}{}
	}
	return Status{Kind: StatusSuspect, Incarnation: incarnation, SuspectedBy: set}
}

// UnreachableStatus returns an unreachable status at the given incarnation.
func UnreachableStatus(incarnation uint64) Status {
	return Status{Kind: StatusUnreachable, Incarnation: incarnation}
}

// DeadStatus returns the terminal dead status.
func DeadStatus() Status {
	return Status{Kind: StatusDead}
}

// IsReachable reports whether the status is on the reachable side of
// the reachable/unreachable boundary. Alive and suspect members are
// still reachable; unreachable and dead members are not.
func (s Status) IsReachable() bool {
	return s.Kind == StatusAlive || s.Kind == StatusSuspect
}

func (s Status) String() string {
	switch s.Kind {
	case StatusDead:
		return "DEAD"
	case StatusSuspect:
		uids := make([]uint64, 0, len(s.SuspectedBy))
		for uid := range s.SuspectedBy {
			uids = append(uids, uid)
		}
		sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })
		parts := make([]string, len(uids))
		for i, uid := range uids {
			parts[i] = fmt.Sprintf("%d", uid)
		}
		return fmt.Sprintf("SUSPECT(%d, by [%s])", s.Incarnation, strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Incarnation)
	}
}

// Supersedes reports whether s overrides other under SWIM rumor
// precedence: dead overrides every other status and nothing overrides
// dead; otherwise higher incarnations win, and at equal incarnations
// the order is unreachable > suspect > alive.
func (s Status) Supersedes(other Status) bool {
	if s.Kind == StatusDead {
		return other.Kind != StatusDead
	}
	if other.Kind == StatusDead {
		return false
	}
	if s.Incarnation != other.Incarnation {
		return s.Incarnation > other.Incarnation
	}
	return s.Kind > other.Kind
}

// Member is a node together with its current status and the suspicion
// bookkeeping the shell's timeout scan needs.
type Member struct {
	Node               Node
	Status             Status
	ProtocolPeriod     uint64
	SuspicionStartedAt time.Time
}

// StatusChange describes one member-status transition. Previous is nil
// when the member was not known before.
type StatusChange struct {
	Previous *Status
	Member   Member
}

// IsReachabilityChange reports whether the transition crosses the
// reachable/unreachable boundary. A newly discovered member counts as
// a reachability change (from nothing to something).
func (c StatusChange) IsReachabilityChange() bool {
	if c.Previous == nil {
		return true
	}
	return c.Previous.IsReachable() != c.Member.Status.IsReachable()
}

func (c StatusChange) String() string {
	prev := "none"
	if c.Previous != nil {
		prev = c.Previous.String()
	}
	return fmt.Sprintf("%s: %s -> %s", c.Member.Node, prev, c.Member.Status)
}
