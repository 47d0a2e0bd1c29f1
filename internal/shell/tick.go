package shell

import (
	"go.uber.org/zap"

	"memberd/internal/swim"
	"memberd/internal/telemetry"
)

const periodicPingKey = "periodic-ping"

// handlePeriodicTick runs one protocol period: escalate expired
// suspects, let the engine decide what to probe, then self-chain the
// next tick.
func (s *Shell) handlePeriodicTick() {
	if s.shutdown {
		return
	}
	s.checkSuspicionTimeouts()
	s.dispatch(s.engine.OnPeriodicPingTick(), nil)
	telemetry.ProtocolPeriods.Inc()
	s.scheduleNextTick()
}

// scheduleNextTick replaces the pending tick with one at the engine's
// current LHM-stretched protocol interval. At most one tick is ever
// scheduled.
func (s *Shell) scheduleNextTick() {
	s.nextTick.Cancel()
	s.nextTick = s.loop.ScheduleOnce(periodicPingKey,
		s.engine.DynamicLHMProtocolInterval(), s.handlePeriodicTick)
}

// checkSuspicionTimeouts escalates every suspect whose suspicion
// window has elapsed: to unreachable when the extension is enabled,
// straight to dead otherwise.
func (s *Shell) checkSuspicionTimeouts() {
	now := s.loop.Now()
	ext := s.engine.Settings().ExtensionUnreachability
	for _, suspect := range s.engine.Suspects() {
		if suspect.Status.Kind != swim.StatusSuspect {
			// Already escalated or reaped, nothing to time out.
			continue
		}
		window := s.engine.SuspicionTimeout(len(suspect.Status.SuspectedBy))
		if suspect.SuspicionStartedAt.Add(window).After(now) {
			continue
		}
		var next swim.Status
		if ext {
			next = swim.UnreachableStatus(suspect.Status.Incarnation)
		} else {
			next = swim.DeadStatus()
		}
		change, applied := s.engine.Mark(s.resolver.PeerFor(suspect.Node), next)
		if !applied {
			continue
		}
		s.log.Info("suspicion window elapsed",
			zap.String("member", suspect.Node.String()),
			zap.Duration("window", window),
			zap.Stringer("status", next))
		s.tryAnnounce(&change)
	}
}
