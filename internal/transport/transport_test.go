package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	api "memberd/internal/gen/api"
	"memberd/internal/loop"
	"memberd/internal/swim"
)

const waitFor = 5 * time.Second

type probeResult struct {
	resp swim.PingResponse
	err  error
}

type probeRecord struct {
	origin  swim.Peer
	target  swim.Peer
	payload swim.Payload
	seqNo   uint64
}

// echoHandler answers inbound probes according to mode: "ack" sends an
// acknowledgement, "nack" a negative one, "drop" stays silent.
type echoHandler struct {
	tr          *Transport
	mode        string
	incarnation uint64
	inbound     chan probeRecord
}

func newEchoHandler(tr *Transport, mode string) *echoHandler {
	h := &echoHandler{tr: tr, mode: mode, inbound: make(chan probeRecord, 8)}
	tr.Bind(h)
	return h
}

func (h *echoHandler) HandlePing(pingOrigin swim.Peer, payload swim.Payload, seqNo uint64) {
	h.inbound <- probeRecord{origin: pingOrigin, payload: payload, seqNo: seqNo}
	self := h.tr.PeerFor(h.tr.LocalNode())
	switch h.mode {
	case "ack":
		pingOrigin.Ack(seqNo, self, h.incarnation, payload)
	case "nack":
		pingOrigin.Nack(seqNo, self)
	}
}

func (h *echoHandler) HandlePingRequest(target swim.Peer, pingRequestOrigin swim.Peer, payload swim.Payload, seqNo uint64) {
	h.inbound <- probeRecord{origin: pingRequestOrigin, target: target, payload: payload, seqNo: seqNo}
	switch h.mode {
	case "ack":
		pingRequestOrigin.Ack(seqNo, target, h.incarnation, payload)
	case "nack":
		pingRequestOrigin.Nack(seqNo, target)
	}
}

func startTransport(t *testing.T, clock loop.Clock) *Transport {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "failed to open loopback listener")
	tr := New(swim.NewNode(lis.Addr().String()), clock, zap.NewNop())
	go func() { _ = tr.Serve(lis) }()
	t.Cleanup(tr.Shutdown)
	return tr
}

func completion(buf int) (swim.CompletionFunc, chan probeResult) {
	ch := make(chan probeResult, buf)
	return func(resp swim.PingResponse, err error) {
		ch <- probeResult{resp: resp, err: err}
	}, ch
}

func awaitResult(t *testing.T, ch <-chan probeResult) probeResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for a probe completion")
		return probeResult{}
	}
}

func awaitRecord(t *testing.T, ch <-chan probeRecord) probeRecord {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for an inbound probe")
		return probeRecord{}
	}
}

func TestTransport_PingAckRoundTrip(t *testing.T) {
	a := startTransport(t, loop.SystemClock())
	b := startTransport(t, loop.SystemClock())
	handler := newEchoHandler(b, "ack")
	handler.incarnation = 7

	done, results := completion(1)
	a.PeerFor(b.LocalNode()).Ping(swim.Payload("rumors"), nil, waitFor, 42, done)

	rec := awaitRecord(t, handler.inbound)
	require.Equal(t, a.LocalNode(), rec.origin.Node(), "ping must carry the sender's identity")
	require.Equal(t, uint64(42), rec.seqNo)
	require.Equal(t, swim.Payload("rumors"), rec.payload)

	res := awaitResult(t, results)
	require.NoError(t, res.err)
	ack, ok := res.resp.(swim.AckResponse)
	require.True(t, ok, "expected an AckResponse, got %T", res.resp)
	require.Equal(t, uint64(42), ack.SeqNo)
	require.Equal(t, uint64(7), ack.Incarnation)
	require.Equal(t, b.LocalNode(), ack.Target.Node())
	require.Equal(t, swim.Payload("rumors"), ack.Payload)
}

func TestTransport_PingRequestDelivery(t *testing.T) {
	a := startTransport(t, loop.SystemClock())
	b := startTransport(t, loop.SystemClock())
	handler := newEchoHandler(b, "ack")
	handler.incarnation = 3
	target := swim.NewNode("10.9.9.9:7946")

	done, results := completion(1)
	a.PeerFor(b.LocalNode()).PingRequest(a.PeerFor(target), swim.Payload("pr"), nil, waitFor, 11, done)

	rec := awaitRecord(t, handler.inbound)
	require.Equal(t, a.LocalNode(), rec.origin.Node())
	require.Equal(t, target, rec.target.Node(), "relay must learn which node to probe")
	require.Equal(t, uint64(11), rec.seqNo)

	res := awaitResult(t, results)
	require.NoError(t, res.err)
	ack, ok := res.resp.(swim.AckResponse)
	require.True(t, ok, "expected an AckResponse, got %T", res.resp)
	require.Equal(t, uint64(11), ack.SeqNo)
	require.Equal(t, target, ack.Target.Node(), "ack must name the probed target, not the relay")
}

func TestTransport_NackResolvesProbe(t *testing.T) {
	a := startTransport(t, loop.SystemClock())
	b := startTransport(t, loop.SystemClock())
	newEchoHandler(b, "nack")
	target := swim.NewNode("10.9.9.9:7946")

	done, results := completion(1)
	a.PeerFor(b.LocalNode()).PingRequest(a.PeerFor(target), nil, nil, waitFor, 23, done)

	res := awaitResult(t, results)
	require.NoError(t, res.err)
	nack, ok := res.resp.(swim.NackResponse)
	require.True(t, ok, "expected a NackResponse, got %T", res.resp)
	require.Equal(t, uint64(23), nack.SeqNo)
	require.Equal(t, target, nack.Target.Node())
}

func TestTransport_ProbeDeadlineExpires(t *testing.T) {
	a := startTransport(t, loop.SystemClock())
	b := startTransport(t, loop.SystemClock())
	newEchoHandler(b, "drop")

	done, results := completion(1)
	a.PeerFor(b.LocalNode()).Ping(nil, nil, 50*time.Millisecond, 5, done)

	res := awaitResult(t, results)
	require.Nil(t, res.resp)
	require.ErrorIs(t, res.err, swim.ErrProbeTimeout)
}

func TestTransport_UnreachablePeerFailsProbe(t *testing.T) {
	a := startTransport(t, loop.SystemClock())

	// Reserve a port, then close it so nothing is listening there.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadAddr := lis.Addr().String()
	require.NoError(t, lis.Close())

	done, results := completion(1)
	a.PeerFor(swim.NewNode(deadAddr)).Ping(nil, nil, waitFor, 6, done)

	res := awaitResult(t, results)
	require.Nil(t, res.resp)
	require.Error(t, res.err)
	require.NotErrorIs(t, res.err, swim.ErrProbeTimeout, "a refused connection is a send failure, not a timeout")
}

func TestTransport_SeqNoCollisionSupersedes(t *testing.T) {
	clock := loop.NewManualClock(time.Unix(0, 0))
	a := startTransport(t, clock)
	b := startTransport(t, loop.SystemClock())
	newEchoHandler(b, "drop")

	first, firstCh := completion(1)
	second, secondCh := completion(1)
	peer := a.PeerFor(b.LocalNode())
	peer.Ping(nil, nil, time.Minute, 77, first)
	peer.Ping(nil, nil, time.Minute, 77, second)

	res := awaitResult(t, firstCh)
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "superseded")

	select {
	case res := <-secondCh:
		t.Fatalf("second probe resolved prematurely: %+v", res)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTransport_ShutdownFailsPendingProbes(t *testing.T) {
	clock := loop.NewManualClock(time.Unix(0, 0))
	a := startTransport(t, clock)
	b := startTransport(t, loop.SystemClock())
	newEchoHandler(b, "drop")

	done, results := completion(2)
	peer := a.PeerFor(b.LocalNode())
	peer.Ping(nil, nil, time.Minute, 1, done)
	peer.Ping(nil, nil, time.Minute, 2, done)

	a.Shutdown()

	for i := 0; i < 2; i++ {
		res := awaitResult(t, results)
		require.ErrorIs(t, res.err, ErrTransportClosed)
	}

	// New probes on a closed transport fail immediately.
	late, lateCh := completion(1)
	peer.Ping(nil, nil, time.Minute, 3, late)
	res := awaitResult(t, lateCh)
	require.ErrorIs(t, res.err, ErrTransportClosed)
}

func TestTransport_MessagesBeforeBindAreDropped(t *testing.T) {
	a := startTransport(t, loop.SystemClock())
	b := startTransport(t, loop.SystemClock())
	// b never binds a handler.

	done, results := completion(1)
	a.PeerFor(b.LocalNode()).Ping(nil, nil, 100*time.Millisecond, 9, done)

	res := awaitResult(t, results)
	require.ErrorIs(t, res.err, swim.ErrProbeTimeout, "unhandled pings must be dropped, not answered")
}

func TestTransport_PeerForRoundTrip(t *testing.T) {
	clock := loop.NewManualClock(time.Unix(0, 0))
	tr := New(swim.NewNode("127.0.0.1:7946"), clock, zap.NewNop())
	node := swim.Node{Addr: "10.0.0.1:7946", UID: 12}
	require.Equal(t, node, tr.PeerFor(node).Node())
}

func TestClientManager_CachesAndForgets(t *testing.T) {
	cm := NewClientManager()
	defer cm.Close()

	c1, err := cm.ClientFor("127.0.0.1:1")
	require.NoError(t, err)
	require.NotNil(t, c1)
	c2, err := cm.ClientFor("127.0.0.1:1")
	require.NoError(t, err)
	require.NotNil(t, c2)
	require.Len(t, cm.conns, 1, "the same address must reuse one connection")

	cm.Forget("127.0.0.1:1")
	require.Len(t, cm.conns, 0)
	_, err = cm.ClientFor("127.0.0.1:1")
	require.NoError(t, err)
	require.Len(t, cm.conns, 1, "Forget must allow a redial")
}

func TestTransport_EmptyEnvelopeRejected(t *testing.T) {
	clock := loop.NewManualClock(time.Unix(0, 0))
	tr := New(swim.NewNode("127.0.0.1:7946"), clock, zap.NewNop())

	_, err := tr.Send(context.Background(), &api.Envelope{})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
