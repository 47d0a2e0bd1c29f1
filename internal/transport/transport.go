package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	api "memberd/internal/gen/api"
	"memberd/internal/loop"
	"memberd/internal/swim"
	"memberd/internal/telemetry"
)

// ErrTransportClosed resolves probes still pending at shutdown.
var ErrTransportClosed = errors.New("transport closed")

// sendTimeout bounds the RPC delivering fire-and-forget messages.
const sendTimeout = 5 * time.Second

// Handler receives inbound probes. The shell implements it; calls
// arrive on transport goroutines.
type Handler interface {
	// HandlePing handles a direct probe from pingOrigin.
	HandlePing(pingOrigin swim.Peer, payload swim.Payload, seqNo uint64)
	// HandlePingRequest handles a request to probe target on
	// pingRequestOrigin's behalf.
	HandlePingRequest(target swim.Peer, pingRequestOrigin swim.Peer, payload swim.Payload, seqNo uint64)
}

// Transport binds a local node to the network. It serves the Swim gRPC
// service, resolves peers for outbound sends, and correlates probe
// responses by sequence number.
type Transport struct {
	log     *zap.Logger
	local   swim.Node
	clock   loop.Clock
	clients *ClientManager
	server  *grpc.Server

	mu      sync.Mutex
	handler Handler
	pending map[uint64]*pendingProbe
	closed  bool
}

type pendingProbe struct {
	seqNo  uint64
	target swim.Node
	done   swim.CompletionFunc
	stop   func() bool
}

// New creates a transport for the local node. Bind a handler before
// serving.
func New(local swim.Node, clock loop.Clock, log *zap.Logger) *Transport {
	t := &Transport{
		log:     log,
		local:   local,
		clock:   clock,
		clients: NewClientManager(),
		server:  grpc.NewServer(),
		pending: make(map[uint64]*pendingProbe),
	}
	api.RegisterSwimServer(t.server, t)
	return t
}

// Bind attaches the inbound handler. Pings and ping requests arriving
// before Bind are acknowledged on the wire and dropped; acks and nacks
// resolve pending probes either way.
func (t *Transport) Bind(h Handler) {
	t.mu.Lock()
	t.handler = h
	t.mu.Unlock()
}

// GRPCServer exposes the underlying server so additional services can
// be registered before Serve.
func (t *Transport) GRPCServer() *grpc.Server {
	return t.server
}

// Serve accepts connections on lis until Shutdown.
func (t *Transport) Serve(lis net.Listener) error {
	return t.server.Serve(lis)
}

// Shutdown stops the server, closes client connections and fails every
// pending probe with ErrTransportClosed.
func (t *Transport) Shutdown() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	drained := make([]*pendingProbe, 0, len(t.pending))
	for seqNo, p := range t.pending {
		delete(t.pending, seqNo)
		drained = append(drained, p)
	}
	t.mu.Unlock()

	for _, p := range drained {
		p.stop()
		telemetry.ProbesInFlight.Dec()
		p.done(nil, ErrTransportClosed)
	}
	t.server.Stop()
	t.clients.Close()
}

// LocalNode returns the node this transport was bound to.
func (t *Transport) LocalNode() swim.Node {
	return t.local
}

// PeerFor returns a sendable handle for node. Handles are cheap values;
// any two handles for the same node are interchangeable.
func (t *Transport) PeerFor(node swim.Node) swim.Peer {
	return peer{node: node, t: t}
}

// Send implements the Swim service: it accepts one protocol envelope,
// resolves acks and nacks against the pending table, and hands probes
// to the handler.
func (t *Transport) Send(ctx context.Context, env *api.Envelope) (*api.SendReply, error) {
	switch m := env.GetMsg().(type) {
	case *api.Envelope_Ping:
		telemetry.MessagesReceived.WithLabelValues("ping").Inc()
		if h := t.boundHandler(); h != nil {
			origin := t.PeerFor(nodeFromProto(m.Ping.GetFrom()))
			h.HandlePing(origin, m.Ping.GetPayload(), m.Ping.GetSeqNo())
		}
	case *api.Envelope_PingRequest:
		telemetry.MessagesReceived.WithLabelValues("ping_request").Inc()
		if h := t.boundHandler(); h != nil {
			target := t.PeerFor(nodeFromProto(m.PingRequest.GetTarget()))
			origin := t.PeerFor(nodeFromProto(m.PingRequest.GetFrom()))
			h.HandlePingRequest(target, origin, m.PingRequest.GetPayload(), m.PingRequest.GetSeqNo())
		}
	case *api.Envelope_Ack:
		telemetry.MessagesReceived.WithLabelValues("ack").Inc()
		ack := m.Ack
		resp := swim.AckResponse{
			Target:      t.PeerFor(nodeFromProto(ack.GetTarget())),
			Incarnation: ack.GetIncarnation(),
			Payload:     ack.GetPayload(),
			SeqNo:       ack.GetSeqNo(),
		}
		if !t.resolve(ack.GetSeqNo(), resp, "ack") {
			t.log.Debug("ack with no pending probe",
				zap.Uint64("seq_no", ack.GetSeqNo()),
				zap.String("from", nodeFromProto(ack.GetFrom()).String()))
		}
	case *api.Envelope_Nack:
		telemetry.MessagesReceived.WithLabelValues("nack").Inc()
		nack := m.Nack
		resp := swim.NackResponse{
			Target: t.PeerFor(nodeFromProto(nack.GetTarget())),
			SeqNo:  nack.GetSeqNo(),
		}
		if !t.resolve(nack.GetSeqNo(), resp, "nack") {
			t.log.Debug("nack with no pending probe",
				zap.Uint64("seq_no", nack.GetSeqNo()))
		}
	default:
		return nil, status.Error(codes.InvalidArgument, "empty envelope")
	}
	return &api.SendReply{}, nil
}

func (t *Transport) boundHandler() Handler {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handler
}

// registerProbe installs a pending entry and its deadline timer. The
// completion fires exactly once: from resolve, from the timer, or from
// a send failure. The timer is armed under the table lock so no
// resolver can observe the entry before its stop function is set.
func (t *Transport) registerProbe(target swim.Node, seqNo uint64, timeout time.Duration, done swim.CompletionFunc) bool {
	p := &pendingProbe{seqNo: seqNo, target: target, done: done}
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		done(nil, ErrTransportClosed)
		return false
	}
	prev := t.pending[seqNo]
	t.pending[seqNo] = p
	p.stop = t.clock.AfterFunc(timeout, func() {
		if q := t.take(seqNo); q != nil {
			telemetry.ProbesInFlight.Dec()
			telemetry.ProbeOutcomes.WithLabelValues("timeout").Inc()
			q.done(nil, fmt.Errorf("probe seq %d to %s: %w", seqNo, target, swim.ErrProbeTimeout))
		}
	})
	t.mu.Unlock()

	telemetry.ProbesInFlight.Inc()
	if prev != nil {
		// Sequence numbers are engine-unique; a collision means the
		// previous probe leaked. Fail it rather than strand it.
		prev.stop()
		telemetry.ProbesInFlight.Dec()
		prev.done(nil, fmt.Errorf("probe seq %d superseded", seqNo))
	}
	return true
}

func (t *Transport) take(seqNo uint64) *pendingProbe {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, exists := t.pending[seqNo]
	if !exists {
		return nil
	}
	delete(t.pending, seqNo)
	return p
}

func (t *Transport) resolve(seqNo uint64, resp swim.PingResponse, outcome string) bool {
	p := t.take(seqNo)
	if p == nil {
		return false
	}
	p.stop()
	telemetry.ProbesInFlight.Dec()
	telemetry.ProbeOutcomes.WithLabelValues(outcome).Inc()
	p.done(resp, nil)
	return true
}

// failProbe resolves a pending probe with a send error, if it is still
// pending.
func (t *Transport) failProbe(seqNo uint64, err error) {
	p := t.take(seqNo)
	if p == nil {
		return
	}
	p.stop()
	telemetry.ProbesInFlight.Dec()
	telemetry.ProbeOutcomes.WithLabelValues("error").Inc()
	p.done(nil, err)
}

// sendEnvelope delivers env to addr on a transport goroutine. onErr,
// when non-nil, is invoked if the envelope could not be delivered.
func (t *Transport) sendEnvelope(addr, kind string, env *api.Envelope, onErr func(error)) {
	go func() {
		client, err := t.clients.ClientFor(addr)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			_, err = client.Send(ctx, env)
			cancel()
		}
		if err != nil {
			t.log.Debug("send failed",
				zap.String("kind", kind),
				zap.String("to", addr),
				zap.Error(err))
			if onErr != nil {
				onErr(err)
			}
			return
		}
		telemetry.MessagesSent.WithLabelValues(kind).Inc()
	}()
}

// peer is the transport-bound handle for one node.
type peer struct {
	node swim.Node
	t    *Transport
}

func (p peer) Node() swim.Node {
	return p.node
}

func (p peer) Ping(payload swim.Payload, from swim.Peer, timeout time.Duration, seqNo uint64, done swim.CompletionFunc) {
	fromNode := p.t.local
	if from != nil {
		fromNode = from.Node()
	}
	if !p.t.registerProbe(p.node, seqNo, timeout, done) {
		return
	}
	env := &api.Envelope{Msg: &api.Envelope_Ping{Ping: &api.Ping{
		From:    nodeToProto(fromNode),
		SeqNo:   seqNo,
		Payload: payload,
	}}}
	p.t.sendEnvelope(p.node.Addr, "ping", env, func(err error) {
		p.t.failProbe(seqNo, err)
	})
}

func (p peer) PingRequest(target swim.Peer, payload swim.Payload, from swim.Peer, timeout time.Duration, seqNo uint64, done swim.CompletionFunc) {
	fromNode := p.t.local
	if from != nil {
		fromNode = from.Node()
	}
	if !p.t.registerProbe(target.Node(), seqNo, timeout, done) {
		return
	}
	env := &api.Envelope{Msg: &api.Envelope_PingRequest{PingRequest: &api.PingRequest{
		From:    nodeToProto(fromNode),
		Target:  nodeToProto(target.Node()),
		SeqNo:   seqNo,
		Payload: payload,
	}}}
	p.t.sendEnvelope(p.node.Addr, "ping_request", env, func(err error) {
		p.t.failProbe(seqNo, err)
	})
}

func (p peer) Ack(seqNo uint64, target swim.Peer, incarnation uint64, payload swim.Payload) {
	env := &api.Envelope{Msg: &api.Envelope_Ack{Ack: &api.Ack{
		From:        nodeToProto(p.t.local),
		Target:      nodeToProto(target.Node()),
		SeqNo:       seqNo,
		Incarnation: incarnation,
		Payload:     payload,
	}}}
	p.t.sendEnvelope(p.node.Addr, "ack", env, nil)
}

func (p peer) Nack(seqNo uint64, target swim.Peer) {
	env := &api.Envelope{Msg: &api.Envelope_Nack{Nack: &api.Nack{
		From:   nodeToProto(p.t.local),
		Target: nodeToProto(target.Node()),
		SeqNo:  seqNo,
	}}}
	p.t.sendEnvelope(p.node.Addr, "nack", env, nil)
}
