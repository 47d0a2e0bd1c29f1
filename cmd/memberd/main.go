package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"memberd/internal/config"
	"memberd/internal/discovery"
	"memberd/internal/engine"
	"memberd/internal/loop"
	"memberd/internal/shell"
	"memberd/internal/swim"
	"memberd/internal/telemetry"
	"memberd/internal/transport"
)

var (
	version = "dev"
	gitSHA  = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the YAML config file")
		listenAddr = flag.String("listen", "", "protocol listen address (overrides config)")
		httpAddr   = flag.String("http", "", "HTTP listen address (overrides config)")
		seeds      = flag.String("seeds", "", "comma-separated seed list (overrides config)")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *seeds != "" {
		cfg.Seeds = *seeds
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("daemon failed", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	telemetry.SetBuildInfo(version, gitSHA)

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	local := swim.NewNode(cfg.ListenAddr)
	log.Info("starting",
		zap.String("node", local.String()),
		zap.String("version", version))

	clock := loop.SystemClock()
	lp := loop.New(clock, log.Named("loop"))

	tr := transport.New(local, clock, log.Named("transport"))

	var reg *discovery.Registry
	if len(cfg.Etcd.Endpoints) > 0 {
		reg, err = discovery.New(cfg.Etcd.Endpoints, cfg.Etcd.Namespace, cfg.Etcd.LeaseTTLSeconds, log.Named("discovery"))
		if err != nil {
			return err
		}
		defer reg.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		peers, err := reg.Peers(ctx, local)
		cancel()
		if err != nil {
			return err
		}
		settings.InitialContactPoints = mergeSeeds(settings.InitialContactPoints, peers)
	}

	eng := engine.New(local, settings, tr, clock, log.Named("engine"))

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr, err)
	}

	lp.Start()
	sh := shell.New(eng, local, tr, lp, log.Named("shell"), shell.Options{
		StartPeriodic: true,
	})
	tr.Bind(sh)
	transport.NewAdmin(sh, log.Named("admin")).Register(tr)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- tr.Serve(lis)
	}()

	var httpSrv *http.Server
	if cfg.HTTPAddr != "" {
		httpSrv = &http.Server{Addr: cfg.HTTPAddr, Handler: httpRouter(sh)}
		go func() {
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("http server failed", zap.Error(err))
			}
		}()
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
	}

	if reg != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := reg.Register(ctx, local)
		cancel()
		if err != nil {
			return err
		}
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		reg.Watch(watchCtx, local, func(node swim.Node) {
			sh.Monitor(node)
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("grpc server failed: %w", err)
		}
	}

	if httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = httpSrv.Shutdown(ctx)
		cancel()
	}
	sh.Shutdown()
	lp.Stop()
	tr.Shutdown()
	return nil
}

// httpRouter exposes the read-only operational surface next to the
// gRPC admin service.
func httpRouter(sh *shell.Shell) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	r.HandleFunc("/members", func(w http.ResponseWriter, _ *http.Request) {
		type member struct {
			Node        string `json:"node"`
			Status      string `json:"status"`
			Incarnation uint64 `json:"incarnation"`
		}
		members := sh.Members()
		out := make([]member, 0, len(members))
		for _, m := range members {
			out = append(out, member{
				Node:        m.Node.String(),
				Status:      m.Status.Kind.String(),
				Incarnation: m.Status.Incarnation,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}).Methods(http.MethodGet)
	r.Handle("/metrics", telemetry.MetricsHandler()).Methods(http.MethodGet)
	return r
}

func mergeSeeds(static, discovered []swim.Node) []swim.Node {
	seen := make(map[string]struct{}, len(static))
	merged := make([]swim.Node, 0, len(static)+len(discovered))
	for _, n := range append(static, discovered...) {
		if _, ok := seen[n.Addr]; ok {
			continue
		}
		seen[n.Addr] = struct{}{}
		merged = append(merged, n)
	}
	return merged
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
