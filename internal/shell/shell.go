package shell

import (
	"go.uber.org/zap"

	"memberd/internal/loop"
	"memberd/internal/swim"
	"memberd/internal/telemetry"
)

// Options configures shell behavior beyond the engine settings.
type Options struct {
	// StartPeriodic kicks off the first protocol-period tick at
	// construction. Tests drive ticks by hand with it disabled.
	StartPeriodic bool

	// OnMemberStatusChange is invoked synchronously on the protocol
	// loop for every announced reachability change. It must not block.
	OnMemberStatusChange func(swim.StatusChange)
}

// Shell integrates a SWIM engine with the transport and the clock. All
// fields past construction are owned by the protocol loop.
type Shell struct {
	log      *zap.Logger
	loop     *loop.Loop
	engine   swim.Engine
	resolver swim.PeerResolver

	localNode swim.Node
	selfPeer  swim.Peer

	onChange func(swim.StatusChange)

	nextTick *loop.Cancellable
	shutdown bool
}

// New creates a shell and immediately, on the protocol loop, announces
// self as alive, starts monitoring every configured initial contact
// point and, when opts.StartPeriodic is set, schedules the first
// protocol-period tick. The loop must already be started.
func New(engine swim.Engine, local swim.Node, resolver swim.PeerResolver, lp *loop.Loop, log *zap.Logger, opts Options) *Shell {
	s := &Shell{
		log:       log,
		loop:      lp,
		engine:    engine,
		resolver:  resolver,
		localNode: local,
		selfPeer:  resolver.PeerFor(local),
		onChange:  opts.OnMemberStatusChange,
	}
	lp.Do(func() {
		s.announceSelfAlive()
		for _, seed := range engine.Settings().InitialContactPoints {
			s.startMonitoring(seed, 1)
		}
		if opts.StartPeriodic {
			s.scheduleNextTick()
		}
	})
	return s
}

// LocalNode returns the node the shell runs as.
func (s *Shell) LocalNode() swim.Node {
	return s.localNode
}

// Peer returns the shell's own peer handle.
func (s *Shell) Peer() swim.Peer {
	return s.selfPeer
}

// HandlePing feeds an inbound direct probe to the engine.
func (s *Shell) HandlePing(pingOrigin swim.Peer, payload swim.Payload, seqNo uint64) {
	s.loop.Do(func() {
		if s.shutdown {
			return
		}
		s.dispatch(s.engine.OnPing(pingOrigin, payload, seqNo), pingOrigin)
	})
}

// HandlePingRequest feeds an inbound request to probe target on
// pingRequestOrigin's behalf to the engine.
func (s *Shell) HandlePingRequest(target swim.Peer, pingRequestOrigin swim.Peer, payload swim.Payload, seqNo uint64) {
	s.loop.Do(func() {
		if s.shutdown {
			return
		}
		s.dispatch(s.engine.OnPingRequest(target, pingRequestOrigin, payload, seqNo), pingRequestOrigin)
	})
}

// Monitor starts monitoring the given node. Monitoring self, or a node
// the engine already tracks, is a no-op.
func (s *Shell) Monitor(node swim.Node) {
	s.loop.Do(func() {
		s.startMonitoring(node, 1)
	})
}

// ConfirmDead marks the given node dead on external authority and
// reports whether the confirmation changed anything. It requires the
// unreachability extension.
func (s *Shell) ConfirmDead(node swim.Node) bool {
	if s.loop.OnLoop() {
		return s.confirmDead(node)
	}
	var applied bool
	done := make(chan struct{})
	if !s.loop.Enqueue(func() {
		applied = s.confirmDead(node)
		close(done)
	}) {
		return false
	}
	<-done
	return applied
}

// Members returns a snapshot of the engine's membership table.
func (s *Shell) Members() []swim.Member {
	if s.loop.OnLoop() {
		return s.engine.AllMembers()
	}
	var members []swim.Member
	done := make(chan struct{})
	if !s.loop.Enqueue(func() {
		members = s.engine.AllMembers()
		close(done)
	}) {
		return nil
	}
	<-done
	return members
}

// Shutdown cancels the pending tick and stops accepting further work.
// In-flight completions still resolve but become no-ops.
func (s *Shell) Shutdown() {
	s.loop.Do(func() {
		if s.shutdown {
			return
		}
		s.shutdown = true
		s.nextTick.Cancel()
		s.nextTick = nil
		s.log.Info("membership shell shut down")
	})
}

func (s *Shell) confirmDead(node swim.Node) bool {
	if s.shutdown {
		return false
	}
	if !s.engine.Settings().ExtensionUnreachability {
		s.log.Warn("confirm dead ignored, unreachability extension disabled",
			zap.String("node", node.String()))
		return false
	}
	member, ok := s.engine.MemberForNode(node)
	if !ok {
		s.log.Warn("confirm dead ignored, unknown member",
			zap.String("node", node.String()))
		return false
	}
	change, applied := s.engine.ConfirmDead(s.resolver.PeerFor(member.Node))
	if !applied {
		return false
	}
	s.tryAnnounce(&change)
	return true
}

// announceSelfAlive delivers the initial self-is-alive event. It does
// not pass the reachability filter since there is no prior status.
func (s *Shell) announceSelfAlive() {
	member, ok := s.engine.MemberForNode(s.localNode)
	if !ok {
		member = swim.Member{Node: s.localNode, Status: swim.AliveStatus(0)}
	}
	s.announce(swim.StatusChange{Member: member})
}

// tryAnnounce delivers change to the embedder iff it crosses the
// reachable boundary. Non-reachability transitions are dropped, so a
// boundary crossing is announced at most once.
func (s *Shell) tryAnnounce(change *swim.StatusChange) {
	if change == nil {
		return
	}
	if !change.IsReachabilityChange() {
		return
	}
	s.announce(*change)
}

func (s *Shell) announce(change swim.StatusChange) {
	s.log.Info("member status changed", zap.Stringer("change", change))
	s.updateMemberMetrics()
	if s.onChange != nil {
		s.onChange(change)
	}
}

func (s *Shell) updateMemberMetrics() {
	counts := map[swim.StatusKind]int{
		swim.StatusAlive:       0,
		swim.StatusSuspect:     0,
		swim.StatusUnreachable: 0,
		swim.StatusDead:        0,
	}
	for _, m := range s.engine.AllMembers() {
		counts[m.Status.Kind]++
	}
	for kind, n := range counts {
		telemetry.Members.WithLabelValues(kind.String()).Set(float64(n))
	}
}
