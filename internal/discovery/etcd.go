// Package discovery registers the local node in etcd and resolves the
// set of registered peers. It is optional; the daemon runs fine on
// static seeds alone.
package discovery

import (
	"context"
	"fmt"
	"path"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"memberd/internal/swim"
)

const dialTimeout = 5 * time.Second

// Registry holds the etcd session for one registered node. It talks
// to etcd through the narrow KV, Lease and Watcher interfaces so the
// session logic stays testable without a live cluster.
type Registry struct {
	log         *zap.Logger
	kv          clientv3.KV
	lease       clientv3.Lease
	watcher     clientv3.Watcher
	closeClient func() error
	namespace   string
	ttl         int64

	leaseID clientv3.LeaseID
	cancel  context.CancelFunc
}

// New connects to etcd. Namespace is the key prefix nodes register
// under, ttl the registration lease in seconds.
func New(endpoints []string, namespace string, ttl int64, log *zap.Logger) (*Registry, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}
	return &Registry{
		log:         log,
		kv:          cli.KV,
		lease:       cli.Lease,
		watcher:     cli.Watcher,
		closeClient: cli.Close,
		namespace:   namespace,
		ttl:         ttl,
	}, nil
}

// Register puts the node under the namespace on a lease and keeps the
// lease alive until Close. The key is the node address, the value the
// full "addr#uid" form so peers learn the exact identity.
func (r *Registry) Register(ctx context.Context, node swim.Node) error {
	lease, err := r.lease.Grant(ctx, r.ttl)
	if err != nil {
		return fmt.Errorf("failed to grant etcd lease: %w", err)
	}
	key := path.Join(r.namespace, node.Addr)
	if _, err := r.kv.Put(ctx, key, node.String(), clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("failed to register node in etcd: %w", err)
	}

	kaCtx, cancel := context.WithCancel(context.Background())
	ch, err := r.lease.KeepAlive(kaCtx, lease.ID)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to keep etcd lease alive: %w", err)
	}
	r.leaseID = lease.ID
	r.cancel = cancel
	go func() {
		for range ch {
		}
		r.log.Debug("etcd keepalive channel closed")
	}()

	r.log.Info("registered in etcd",
		zap.String("key", key),
		zap.Int64("lease_ttl_seconds", r.ttl))
	return nil
}

// Peers returns every node currently registered under the namespace,
// excluding self.
func (r *Registry) Peers(ctx context.Context, self swim.Node) ([]swim.Node, error) {
	resp, err := r.kv.Get(ctx, r.namespace, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("failed to list etcd peers: %w", err)
	}
	peers := make([]swim.Node, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		node, err := swim.ParseNode(string(kv.Value))
		if err != nil {
			r.log.Warn("skipping malformed etcd registration",
				zap.ByteString("key", kv.Key),
				zap.Error(err))
			continue
		}
		if node.Addr == self.Addr {
			continue
		}
		peers = append(peers, node)
	}
	return peers, nil
}

// Watch invokes onJoin for every node that registers under the
// namespace after the call, until ctx is done. Deletions are lease
// expiries; the failure detector notices those on its own.
func (r *Registry) Watch(ctx context.Context, self swim.Node, onJoin func(swim.Node)) {
	ch := r.watcher.Watch(ctx, r.namespace, clientv3.WithPrefix())
	go func() {
		for resp := range ch {
			for _, ev := range resp.Events {
				if ev.Type != clientv3.EventTypePut {
					continue
				}
				node, err := swim.ParseNode(string(ev.Kv.Value))
				if err != nil {
					r.log.Warn("skipping malformed etcd registration",
						zap.ByteString("key", ev.Kv.Key),
						zap.Error(err))
					continue
				}
				if node.Addr == self.Addr {
					continue
				}
				onJoin(node)
			}
		}
	}()
}

// Close revokes the lease and closes the client.
func (r *Registry) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	if r.leaseID != 0 {
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		_, _ = r.lease.Revoke(ctx, r.leaseID)
		cancel()
	}
	if r.closeClient != nil {
		return r.closeClient()
	}
	return nil
}
