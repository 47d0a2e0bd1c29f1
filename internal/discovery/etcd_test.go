package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.etcd.io/etcd/api/v3/mvccpb"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"memberd/internal/swim"
)

// The fakes embed the clientv3 interfaces so only the methods the
// Registry calls need bodies; anything else panics loudly.

type fakeKV struct {
	clientv3.KV
	putKey   string
	putValue string
	putOpts  int
	putErr   error
	getResp  *clientv3.GetResponse
	getErr   error
}

func (f *fakeKV) Put(ctx context.Context, key, val string, opts ...clientv3.OpOption) (*clientv3.PutResponse, error) {
	f.putKey = key
	f.putValue = val
	f.putOpts = len(opts)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &clientv3.PutResponse{}, nil
}

func (f *fakeKV) Get(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.GetResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResp, nil
}

type fakeLease struct {
	clientv3.Lease
	id       clientv3.LeaseID
	grantTTL int64
	grantErr error
	kaID     clientv3.LeaseID
	ka       chan *clientv3.LeaseKeepAliveResponse
	revoked  []clientv3.LeaseID
}

func (f *fakeLease) Grant(ctx context.Context, ttl int64) (*clientv3.LeaseGrantResponse, error) {
	f.grantTTL = ttl
	if f.grantErr != nil {
		return nil, f.grantErr
	}
	return &clientv3.LeaseGrantResponse{ID: f.id, TTL: ttl}, nil
}

func (f *fakeLease) KeepAlive(ctx context.Context, id clientv3.LeaseID) (<-chan *clientv3.LeaseKeepAliveResponse, error) {
	f.kaID = id
	return f.ka, nil
}

func (f *fakeLease) Revoke(ctx context.Context, id clientv3.LeaseID) (*clientv3.LeaseRevokeResponse, error) {
	f.revoked = append(f.revoked, id)
	return &clientv3.LeaseRevokeResponse{}, nil
}

type fakeWatcher struct {
	clientv3.Watcher
	key string
	ch  chan clientv3.WatchResponse
}

func (f *fakeWatcher) Watch(ctx context.Context, key string, opts ...clientv3.OpOption) clientv3.WatchChan {
	f.key = key
	return f.ch
}

func newTestRegistry(kv clientv3.KV, lease clientv3.Lease, w clientv3.Watcher) *Registry {
	return &Registry{
		log:       zap.NewNop(),
		kv:        kv,
		lease:     lease,
		watcher:   w,
		namespace: "/memberd/nodes",
		ttl:       10,
	}
}

func TestRegister(t *testing.T) {
	kv := &fakeKV{}
	lease := &fakeLease{id: 42, ka: make(chan *clientv3.LeaseKeepAliveResponse)}
	r := newTestRegistry(kv, lease, nil)

	node := swim.Node{Addr: "10.0.0.1:7946", UID: 7}
	if err := r.Register(context.Background(), node); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	defer r.Close()
	close(lease.ka)

	if lease.grantTTL != 10 {
		t.Errorf("Grant ttl = %d, want 10", lease.grantTTL)
	}
	if kv.putKey != "/memberd/nodes/10.0.0.1:7946" {
		t.Errorf("Put key = %q, want namespaced address", kv.putKey)
	}
	if kv.putValue != "10.0.0.1:7946#7" {
		t.Errorf("Put value = %q, want full addr#uid form", kv.putValue)
	}
	if kv.putOpts != 1 {
		t.Errorf("Put options = %d, want the lease option", kv.putOpts)
	}
	if lease.kaID != 42 {
		t.Errorf("KeepAlive lease = %d, want 42", lease.kaID)
	}
	if r.leaseID != 42 {
		t.Errorf("leaseID = %d, want 42", r.leaseID)
	}
}

func TestRegister_GrantError(t *testing.T) {
	kv := &fakeKV{}
	lease := &fakeLease{grantErr: errors.New("etcd down")}
	r := newTestRegistry(kv, lease, nil)

	if err := r.Register(context.Background(), swim.Node{Addr: "10.0.0.1:7946", UID: 7}); err == nil {
		t.Fatal("Expected error when the lease grant fails")
	}
	if kv.putKey != "" {
		t.Errorf("Put should not run after a failed grant, got key %q", kv.putKey)
	}
}

func TestRegister_PutError(t *testing.T) {
	kv := &fakeKV{putErr: errors.New("key rejected")}
	lease := &fakeLease{id: 42}
	r := newTestRegistry(kv, lease, nil)

	if err := r.Register(context.Background(), swim.Node{Addr: "10.0.0.1:7946", UID: 7}); err == nil {
		t.Fatal("Expected error when the registration put fails")
	}
	if lease.kaID != 0 {
		t.Errorf("KeepAlive should not run after a failed put, got lease %d", lease.kaID)
	}
}

func TestClose_RevokesLease(t *testing.T) {
	kv := &fakeKV{}
	lease := &fakeLease{id: 42, ka: make(chan *clientv3.LeaseKeepAliveResponse)}
	r := newTestRegistry(kv, lease, nil)

	if err := r.Register(context.Background(), swim.Node{Addr: "10.0.0.1:7946", UID: 7}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	close(lease.ka)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if len(lease.revoked) != 1 || lease.revoked[0] != 42 {
		t.Errorf("revoked = %v, want [42]", lease.revoked)
	}
}

func TestClose_WithoutRegistration(t *testing.T) {
	lease := &fakeLease{}
	r := newTestRegistry(&fakeKV{}, lease, nil)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if len(lease.revoked) != 0 {
		t.Errorf("revoked = %v, want no revocations without a lease", lease.revoked)
	}
}

func TestPeers(t *testing.T) {
	kv := &fakeKV{getResp: &clientv3.GetResponse{Kvs: []*mvccpb.KeyValue{
		{Key: []byte("/memberd/nodes/10.0.0.2:7946"), Value: []byte("10.0.0.2:7946#9")},
		{Key: []byte("/memberd/nodes/broken"), Value: []byte("10.0.0.3:7946#nope")},
		{Key: []byte("/memberd/nodes/10.0.0.1:7946"), Value: []byte("10.0.0.1:7946#7")},
		{Key: []byte("/memberd/nodes/10.0.0.4:7946"), Value: []byte("10.0.0.4:7946")},
	}}}
	r := newTestRegistry(kv, &fakeLease{}, nil)

	self := swim.Node{Addr: "10.0.0.1:7946", UID: 7}
	peers, err := r.Peers(context.Background(), self)
	if err != nil {
		t.Fatalf("Peers() failed: %v", err)
	}
	want := []swim.Node{
		{Addr: "10.0.0.2:7946", UID: 9},
		{Addr: "10.0.0.4:7946"},
	}
	if len(peers) != len(want) {
		t.Fatalf("Peers() = %v, want %v", peers, want)
	}
	for i := range want {
		if peers[i] != want[i] {
			t.Errorf("Peers()[%d] = %v, want %v", i, peers[i], want[i])
		}
	}
}

func TestPeers_GetError(t *testing.T) {
	kv := &fakeKV{getErr: errors.New("etcd down")}
	r := newTestRegistry(kv, &fakeLease{}, nil)
	if _, err := r.Peers(context.Background(), swim.Node{Addr: "10.0.0.1:7946"}); err == nil {
		t.Fatal("Expected error when the prefix read fails")
	}
}

func TestWatch_DeliversJoinsOnly(t *testing.T) {
	w := &fakeWatcher{ch: make(chan clientv3.WatchResponse, 1)}
	r := newTestRegistry(&fakeKV{}, &fakeLease{}, w)

	self := swim.Node{Addr: "10.0.0.1:7946", UID: 7}
	joined := make(chan swim.Node, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Watch(ctx, self, func(n swim.Node) { joined <- n })

	if w.key != "/memberd/nodes" {
		t.Errorf("Watch key = %q, want the namespace prefix", w.key)
	}

	w.ch <- clientv3.WatchResponse{Events: []*clientv3.Event{
		{Type: clientv3.EventTypePut, Kv: &mvccpb.KeyValue{Key: []byte("/memberd/nodes/10.0.0.2:7946"), Value: []byte("10.0.0.2:7946#9")}},
		{Type: clientv3.EventTypeDelete, Kv: &mvccpb.KeyValue{Key: []byte("/memberd/nodes/10.0.0.5:7946"), Value: []byte("10.0.0.5:7946#3")}},
		{Type: clientv3.EventTypePut, Kv: &mvccpb.KeyValue{Key: []byte("/memberd/nodes/broken"), Value: []byte("10.0.0.3:7946#nope")}},
		{Type: clientv3.EventTypePut, Kv: &mvccpb.KeyValue{Key: []byte("/memberd/nodes/10.0.0.1:7946"), Value: []byte("10.0.0.1:7946#7")}},
	}}
	close(w.ch)

	select {
	case n := <-joined:
		want := swim.Node{Addr: "10.0.0.2:7946", UID: 9}
		if n != want {
			t.Errorf("onJoin got %v, want %v", n, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a join for the new peer")
	}

	select {
	case n := <-joined:
		t.Errorf("Unexpected extra join %v", n)
	case <-time.After(100 * time.Millisecond):
	}
}
