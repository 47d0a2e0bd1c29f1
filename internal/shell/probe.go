package shell

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"memberd/internal/loop"
	"memberd/internal/swim"
)

// sendPing issues a direct probe. The completion re-enters the shell on
// the protocol loop; a failed probe is fed to the engine as a timeout.
func (s *Shell) sendPing(d swim.SendPingDirective) {
	target := d.Target
	payload := d.Payload
	if payload == nil {
		payload = s.engine.MakeGossipPayload(target)
	}
	origin := d.PingRequestOrigin
	originSeq := d.PingRequestSeqNo
	timeout := d.Timeout
	seqNo := d.SeqNo
	target.Ping(payload, s.selfPeer, timeout, seqNo, func(resp swim.PingResponse, err error) {
		s.loop.Do(func() {
			if s.shutdown {
				return
			}
			if err != nil {
				if !errors.Is(err, swim.ErrProbeTimeout) {
					s.log.Debug("ping failed",
						zap.String("target", target.Node().String()),
						zap.Uint64("seq_no", seqNo),
						zap.Error(err))
				}
				resp = swim.TimeoutResponse{
					Target:            target,
					PingRequestOrigin: origin,
					Timeout:           timeout,
					SeqNo:             seqNo,
				}
			}
			s.dispatch(s.engine.OnPingResponse(resp, origin, originSeq), origin)
		})
	})
}

// pingRequestFanout is the first-success promise for one indirect
// probe: a one-shot slot plus an overall-timeout timer, both confined
// to the protocol loop. The first ack resolves it; relay failures
// never do.
type pingRequestFanout struct {
	resolved bool
	timer    *loop.Cancellable
}

func (s *Shell) sendPingRequests(d swim.SendPingRequestsDirective) {
	if len(d.Requests) == 0 {
		return
	}
	target := d.Target
	timeout := d.Timeout
	f := &pingRequestFanout{}
	f.timer = s.loop.ScheduleOnce("ping-request-timeout", timeout, func() {
		if s.shutdown || f.resolved {
			return
		}
		f.resolved = true
		// The aggregated outcome is correlated by target; the sequence
		// number carries no meaning here.
		resp := swim.TimeoutResponse{Target: target, Timeout: timeout, SeqNo: 0}
		s.dispatch(s.engine.OnPingRequestResponse(resp, target), nil)
	})
	for _, req := range d.Requests {
		seqNo := req.SeqNo
		req.Peer.PingRequest(target, req.Payload, s.selfPeer, timeout, seqNo, func(resp swim.PingResponse, err error) {
			s.loop.Do(func() {
				s.handlePingRequestCompletion(f, target, timeout, seqNo, resp, err)
			})
		})
	}
}

func (s *Shell) handlePingRequestCompletion(f *pingRequestFanout, target swim.Peer, timeout time.Duration, seqNo uint64, resp swim.PingResponse, err error) {
	if s.shutdown {
		return
	}
	if err != nil {
		if !errors.Is(err, swim.ErrProbeTimeout) {
			s.log.Debug("ping request relay failed",
				zap.String("target", target.Node().String()),
				zap.Uint64("seq_no", seqNo),
				zap.Error(err))
		}
		resp = swim.TimeoutResponse{Target: target, Timeout: timeout, SeqNo: seqNo}
	}
	// Every completion feeds local-health bookkeeping, winner or not.
	s.engine.OnEveryPingRequestResponse(resp, target)

	ack, ok := resp.(swim.AckResponse)
	if !ok || f.resolved {
		return
	}
	f.resolved = true
	f.timer.Cancel()
	s.dispatch(s.engine.OnPingRequestResponse(ack, target), nil)
}
