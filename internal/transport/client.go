package transport

import (
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	api "memberd/internal/gen/api"
)

// ClientManager caches one gRPC connection per peer address.
// Connections are created lazily and kept until Close.
type ClientManager struct {
	mu    sync.RWMutex
	conns map[string]*grpc.ClientConn
}

// NewClientManager creates an empty client manager.
func NewClientManager() *ClientManager {
	return &ClientManager{conns: make(map[string]*grpc.ClientConn)}
}

// ClientFor returns a Swim client for the given address, dialing a new
// connection if none is cached.
func (cm *ClientManager) ClientFor(addr string) (api.SwimClient, error) {
	cm.mu.RLock()
	conn, exists := cm.conns[addr]
	cm.mu.RUnlock()

	if exists {
		return api.NewSwimClient(conn), nil
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Double-check after acquiring the write lock.
	if conn, exists := cm.conns[addr]; exists {
		return api.NewSwimClient(conn), nil
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}
	cm.conns[addr] = conn
	return api.NewSwimClient(conn), nil
}

// Forget drops the cached connection for addr so the next send redials.
func (cm *ClientManager) Forget(addr string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if conn, exists := cm.conns[addr]; exists {
		_ = conn.Close()
		delete(cm.conns, addr)
	}
}

// Close closes every cached connection.
func (cm *ClientManager) Close() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	for addr, conn := range cm.conns {
		_ = conn.Close()
		delete(cm.conns, addr)
	}
}
