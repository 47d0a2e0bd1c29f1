package shell

import (
	"go.uber.org/zap"

	"memberd/internal/swim"
)

// dispatch executes directives in emission order. replyTo is the origin
// of the event being handled; ack and nack directives without an
// explicit destination are sent there.
func (s *Shell) dispatch(directives []swim.Directive, replyTo swim.Peer) {
	for _, d := range directives {
		s.apply(d, replyTo)
	}
}

func (s *Shell) apply(d swim.Directive, replyTo swim.Peer) {
	switch d := d.(type) {
	case swim.IgnoreDirective:
		if d.Reason != "" {
			s.log.Debug("directive ignored", zap.String("reason", d.Reason))
		}

	case swim.GossipProcessedDirective:
		switch g := d.Gossip.(type) {
		case swim.GossipIgnored:
			if g.Reason != "" {
				s.log.Debug("gossip ignored", zap.String("reason", g.Reason))
			}
		case swim.GossipApplied:
			s.tryAnnounce(&g.Change)
		default:
			s.log.DPanic("unknown gossip outcome", zap.Any("outcome", g))
		}

	case swim.SendAckDirective:
		to := d.To
		target := d.Target
		if target == nil {
			target = s.selfPeer
		}
		if to == nil {
			// Replying to the probe we are handling: the acknowledged
			// member must be self.
			to = replyTo
			if target.Node() != s.localNode {
				s.log.DPanic("ack acknowledges a node other than self",
					zap.String("target", target.Node().String()))
			}
		}
		if to == nil {
			s.log.DPanic("ack directive with no destination",
				zap.Uint64("seq_no", d.SeqNo))
			return
		}
		to.Ack(d.SeqNo, target, d.Incarnation, d.Payload)

	case swim.SendNackDirective:
		to := d.To
		if to == nil {
			to = replyTo
		}
		if to == nil {
			s.log.DPanic("nack directive with no destination",
				zap.Uint64("seq_no", d.SeqNo))
			return
		}
		to.Nack(d.SeqNo, d.Target)

	case swim.SendPingDirective:
		s.sendPing(d)

	case swim.SendPingRequestsDirective:
		s.sendPingRequests(d)

	case swim.AliveDirective:
		prev := d.Previous
		s.tryAnnounce(&swim.StatusChange{Previous: &prev, Member: d.Member})

	case swim.NewlySuspectDirective:
		prev := d.Previous
		s.tryAnnounce(&swim.StatusChange{Previous: &prev, Member: d.Suspect})

	case swim.NackReceivedDirective:
		s.log.Debug("nack received from ping request relay")

	default:
		s.log.DPanic("unknown directive", zap.Any("directive", d))
	}
}
