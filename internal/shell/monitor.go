package shell

import (
	"go.uber.org/zap"

	"memberd/internal/swim"
)

// startMonitoring probes node once with an empty payload and the fixed
// bootstrap timeout. Monitoring self, or a node the engine already
// tracks, is a no-op. On failure the probe is retried at the
// configured interval until the attempt cap, if any, is reached.
func (s *Shell) startMonitoring(node swim.Node, attempt int) {
	if s.shutdown {
		return
	}
	if node.WithoutUID() == s.localNode.WithoutUID() {
		return
	}
	peer := s.resolver.PeerFor(node)
	if s.engine.IsMember(peer, true) {
		return
	}
	seqNo := s.engine.NextSequenceNumber()
	s.log.Debug("pinging initial contact",
		zap.String("node", node.String()),
		zap.Int("attempt", attempt),
		zap.Uint64("seq_no", seqNo))
	peer.Ping(nil, s.selfPeer, swim.DefaultBootstrapPingTimeout, seqNo, func(resp swim.PingResponse, err error) {
		s.loop.Do(func() {
			if s.shutdown {
				return
			}
			if err == nil {
				s.dispatch(s.engine.OnPingResponse(resp, nil, 0), peer)
				return
			}
			s.scheduleMonitorRetry(node, attempt, err)
		})
	})
}

func (s *Shell) scheduleMonitorRetry(node swim.Node, attempt int, cause error) {
	settings := s.engine.Settings()
	if max := settings.BootstrapMaxAttempts; max > 0 && attempt >= max {
		s.log.Warn("giving up on initial contact",
			zap.String("node", node.String()),
			zap.Int("attempts", attempt),
			zap.Error(cause))
		return
	}
	s.log.Debug("initial contact did not answer, will retry",
		zap.String("node", node.String()),
		zap.Int("attempt", attempt),
		zap.Duration("retry_in", settings.BootstrapRetryInterval),
		zap.Error(cause))
	s.loop.ScheduleOnce("bootstrap-retry", settings.BootstrapRetryInterval, func() {
		s.startMonitoring(node, attempt+1)
	})
}
