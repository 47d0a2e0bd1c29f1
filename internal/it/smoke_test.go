package it

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "memberd/internal/gen/api"
	"memberd/internal/swim"
)

const convergeTimeout = 15 * time.Second

func TestSmoke_ThreeNodeClusterConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cluster := NewCluster(t)
	members := cluster.StartN(3)
	cluster.AwaitConverged(convergeTimeout, members)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := members[0].Admin().Members(ctx, &api.MembersRequest{})
	require.NoError(t, err)
	assert.Equal(t, members[0].Node.Addr, resp.GetLocal().GetAddr())
	require.Len(t, resp.GetMembers(), 3)
	for _, state := range resp.GetMembers() {
		assert.Equal(t, api.Status_ALIVE, state.GetStatus(),
			"member %s should be alive", state.GetNode().GetAddr())
	}

	health, err := members[0].Admin().Health(ctx, &api.HealthRequest{})
	require.NoError(t, err)
	assert.Equal(t, api.HealthResponse_OK, health.GetStatus())
	assert.Equal(t, members[0].Node.UID, health.GetNode().GetUid())
}

func TestFailureDetection_KilledMemberIsDeclaredDead(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cluster := NewCluster(t)
	members := cluster.StartN(3)
	cluster.AwaitConverged(convergeTimeout, members)
	for _, m := range members {
		m.Changes()
	}

	victim := members[2]
	victim.Kill()

	cluster.AwaitStatus(convergeTimeout, members[0], victim.Node, swim.StatusDead)
	cluster.AwaitStatus(convergeTimeout, members[1], victim.Node, swim.StatusDead)

	// The survivors must have announced exactly one reachability change
	// for the victim.
	for i, m := range members[:2] {
		deaths := 0
		for _, change := range m.Changes() {
			if change.Member.Node.Addr == victim.Node.Addr &&
				change.Member.Status.Kind == swim.StatusDead {
				deaths++
			}
		}
		assert.Equal(t, 1, deaths, "member %d announced %d deaths for the victim", i, deaths)
	}

	// Dead members do not degrade health.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := members[0].Admin().Health(ctx, &api.HealthRequest{})
	require.NoError(t, err)
	assert.Equal(t, api.HealthResponse_OK, health.GetStatus())
}

func TestUnreachability_OperatorConfirmsDeathOverAdmin(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cluster := NewCluster(t)
	withExtension := func(s *swim.Settings) { s.ExtensionUnreachability = true }
	a := cluster.StartMember(nil, withExtension)
	b := cluster.StartMember([]swim.Node{a.Node}, withExtension)
	cluster.AwaitConverged(convergeTimeout, []*Member{a, b})

	b.Kill()
	cluster.AwaitStatus(convergeTimeout, a, b.Node, swim.StatusUnreachable)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// An unreachable member degrades health until the operator rules.
	health, err := a.Admin().Health(ctx, &api.HealthRequest{})
	require.NoError(t, err)
	assert.Equal(t, api.HealthResponse_DEGRADED, health.GetStatus())

	confirm, err := a.Admin().ConfirmDead(ctx, &api.ConfirmDeadRequest{
		Node: &api.Node{Addr: b.Node.Addr, Uid: b.Node.UID},
	})
	require.NoError(t, err)
	assert.True(t, confirm.GetApplied())
	cluster.AwaitStatus(convergeTimeout, a, b.Node, swim.StatusDead)

	// Confirming again changes nothing.
	confirm, err = a.Admin().ConfirmDead(ctx, &api.ConfirmDeadRequest{
		Node: &api.Node{Addr: b.Node.Addr, Uid: b.Node.UID},
	})
	require.NoError(t, err)
	assert.False(t, confirm.GetApplied())

	health, err = a.Admin().Health(ctx, &api.HealthRequest{})
	require.NoError(t, err)
	assert.Equal(t, api.HealthResponse_OK, health.GetStatus())
}

func TestMonitor_AdminRequestJoinsTwoIslands(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cluster := NewCluster(t)
	a := cluster.StartMember(nil, nil)
	b := cluster.StartMember(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := a.Admin().Monitor(ctx, &api.MonitorRequest{
		Node: &api.Node{Addr: b.Node.Addr},
	})
	require.NoError(t, err)

	cluster.AwaitConverged(convergeTimeout, []*Member{a, b})
}
