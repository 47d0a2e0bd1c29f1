package transport

import (
	"context"

	"go.uber.org/zap"

	api "memberd/internal/gen/api"
	"memberd/internal/swim"
	"memberd/internal/telemetry"
)

// Cluster is the view of the running shell the admin surface needs.
type Cluster interface {
	// LocalNode returns the node the daemon runs as.
	LocalNode() swim.Node
	// Members returns a snapshot of the membership table.
	Members() []swim.Member
	// Monitor starts monitoring the given node.
	Monitor(node swim.Node)
	// ConfirmDead marks the given node dead, reporting whether the
	// confirmation changed anything.
	ConfirmDead(node swim.Node) bool
}

// Admin implements the Memberd administrative gRPC service against a
// running cluster shell.
type Admin struct {
	api.UnimplementedMemberdServer

	log     *zap.Logger
	cluster Cluster
}

// NewAdmin creates the admin service.
func NewAdmin(cluster Cluster, log *zap.Logger) *Admin {
	return &Admin{log: log, cluster: cluster}
}

// Register registers the service on the given transport's server. Call
// before Serve.
func (a *Admin) Register(t *Transport) {
	api.RegisterMemberdServer(t.GRPCServer(), a)
}

// Members returns the local node and the current membership table.
func (a *Admin) Members(ctx context.Context, req *api.MembersRequest) (*api.MembersResponse, error) {
	members := a.cluster.Members()
	resp := &api.MembersResponse{
		Local:   nodeToProto(a.cluster.LocalNode()),
		Members: make([]*api.MemberState, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, memberToProto(m))
	}
	return resp, nil
}

// Health reports DEGRADED while any known member is unreachable and OK
// otherwise; dead members do not count.
func (a *Admin) Health(ctx context.Context, req *api.HealthRequest) (*api.HealthResponse, error) {
	serving := api.HealthResponse_OK
	for _, m := range a.cluster.Members() {
		if !m.Status.IsReachable() && m.Status.Kind != swim.StatusDead {
			serving = api.HealthResponse_DEGRADED
			break
		}
	}
	return &api.HealthResponse{
		Status:        serving,
		Node:          nodeToProto(a.cluster.LocalNode()),
		UptimeSeconds: uint64(telemetry.Uptime().Seconds()),
	}, nil
}

// Monitor asks the daemon to start monitoring a node.
func (a *Admin) Monitor(ctx context.Context, req *api.MonitorRequest) (*api.MonitorResponse, error) {
	node := nodeFromProto(req.GetNode())
	a.log.Info("monitor requested", zap.String("node", node.String()))
	a.cluster.Monitor(node)
	return &api.MonitorResponse{}, nil
}

// ConfirmDead marks a node dead on operator authority.
func (a *Admin) ConfirmDead(ctx context.Context, req *api.ConfirmDeadRequest) (*api.ConfirmDeadResponse, error) {
	node := nodeFromProto(req.GetNode())
	applied := a.cluster.ConfirmDead(node)
	a.log.Info("confirm dead requested",
		zap.String("node", node.String()),
		zap.Bool("applied", applied))
	return &api.ConfirmDeadResponse{Applied: applied}, nil
}
