package it

import (
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"memberd/internal/engine"
	api "memberd/internal/gen/api"
	"memberd/internal/loop"
	"memberd/internal/shell"
	"memberd/internal/swim"
	"memberd/internal/transport"
)

// fastSettings shrinks every protocol interval so a cluster converges
// and detects failures within a test's patience.
func fastSettings() swim.Settings {
	s := swim.DefaultSettings()
	s.ProtocolPeriod = 150 * time.Millisecond
	s.PingTimeout = 50 * time.Millisecond
	s.SuspicionTimeoutMin = 300 * time.Millisecond
	s.SuspicionTimeoutMax = 900 * time.Millisecond
	s.BootstrapRetryInterval = 200 * time.Millisecond
	return s
}

// Member is one in-process memberd instance: a transport serving on a
// loopback listener, a protocol loop and a shell around the reference
// engine, plus an admin client dialed back at itself.
type Member struct {
	Node  swim.Node
	Shell *shell.Shell

	lp    *loop.Loop
	tr    *transport.Transport
	conn  *grpc.ClientConn
	admin api.MemberdClient

	mu      sync.Mutex
	changes []swim.StatusChange
	stopped bool
}

// Cluster owns a set of in-process members started for one test.
type Cluster struct {
	t       *testing.T
	members []*Member
}

// NewCluster starts an empty cluster. Members stop automatically at
// test cleanup.
func NewCluster(t *testing.T) *Cluster {
	c := &Cluster{t: t}
	t.Cleanup(c.Stop)
	return c
}

// StartMember starts one member seeded with the given contact points.
// mutate, when non-nil, adjusts the fast default settings first.
func (c *Cluster) StartMember(seeds []swim.Node, mutate func(*swim.Settings)) *Member {
	c.t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		c.t.Fatalf("failed to open listener: %v", err)
	}
	node := swim.NewNode(lis.Addr().String())

	settings := fastSettings()
	settings.InitialContactPoints = seeds
	if mutate != nil {
		mutate(&settings)
	}
	if err := settings.Validate(); err != nil {
		c.t.Fatalf("invalid harness settings: %v", err)
	}

	log := zaptest.NewLogger(c.t, zaptest.Level(zap.WarnLevel)).
		With(zap.String("member", node.Addr))
	clock := loop.SystemClock()
	lp := loop.New(clock, log.Named("loop"))
	tr := transport.New(node, clock, log.Named("transport"))
	eng := engine.New(node, settings, tr, clock, log.Named("engine"))

	m := &Member{Node: node, lp: lp, tr: tr}
	lp.Start()
	m.Shell = shell.New(eng, node, tr, lp, log.Named("shell"), shell.Options{
		StartPeriodic: true,
		OnMemberStatusChange: func(change swim.StatusChange) {
			m.mu.Lock()
			m.changes = append(m.changes, change)
			m.mu.Unlock()
		},
	})
	tr.Bind(m.Shell)
	transport.NewAdmin(m.Shell, log.Named("admin")).Register(tr)
	go func() { _ = tr.Serve(lis) }()

	conn, err := grpc.NewClient(node.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		c.t.Fatalf("failed to dial member %s: %v", node, err)
	}
	m.conn = conn
	m.admin = api.NewMemberdClient(conn)

	c.members = append(c.members, m)
	return m
}

// StartN starts n members, seeding every member after the first with
// the first member's node.
func (c *Cluster) StartN(n int) []*Member {
	c.t.Helper()
	members := make([]*Member, 0, n)
	for i := 0; i < n; i++ {
		var seeds []swim.Node
		if len(members) > 0 {
			seeds = []swim.Node{members[0].Node}
		}
		members = append(members, c.StartMember(seeds, nil))
	}
	return members
}

// Admin returns the member's admin gRPC client.
func (m *Member) Admin() api.MemberdClient {
	return m.admin
}

// Changes drains the recorded status-change announcements.
func (m *Member) Changes() []swim.StatusChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.changes
	m.changes = nil
	return out
}

// statusOf reports the member's view of node, or "" when unknown.
func (m *Member) statusOf(node swim.Node) string {
	for _, member := range m.Shell.Members() {
		if member.Node.Addr == node.Addr {
			return member.Status.Kind.String()
		}
	}
	return ""
}

// Kill tears the member down abruptly. Peers receive no goodbye; the
// failure detector has to notice.
func (m *Member) Kill() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	m.mu.Unlock()

	if m.conn != nil {
		_ = m.conn.Close()
	}
	m.Shell.Shutdown()
	m.tr.Shutdown()
	m.lp.Stop()
}

// Stop kills every member still running.
func (c *Cluster) Stop() {
	for _, m := range c.members {
		m.Kill()
	}
	c.members = nil
}

// await polls cond until it holds or the deadline passes.
func (c *Cluster) await(timeout time.Duration, what string, cond func() bool) {
	c.t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	c.t.Fatalf("timed out waiting for %s", what)
}

// AwaitConverged waits until every given member sees all the others as
// alive.
func (c *Cluster) AwaitConverged(timeout time.Duration, members []*Member) {
	c.t.Helper()
	c.await(timeout, fmt.Sprintf("%d members to converge", len(members)), func() bool {
		for _, m := range members {
			alive := 0
			for _, member := range m.Shell.Members() {
				if member.Status.Kind == swim.StatusAlive {
					alive++
				}
			}
			if alive != len(members) {
				return false
			}
		}
		return true
	})
}

// AwaitStatus waits until observer sees node with the given status.
func (c *Cluster) AwaitStatus(timeout time.Duration, observer *Member, node swim.Node, want swim.StatusKind) {
	c.t.Helper()
	c.await(timeout, fmt.Sprintf("%s to see %s as %s", observer.Node, node, want), func() bool {
		return observer.statusOf(node) == want.String()
	})
}
