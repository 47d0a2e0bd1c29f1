package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"memberd/internal/swim"
)

func TestParseSeeds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []swim.Node
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single seed",
			input: "10.0.0.1:7946",
			want:  []swim.Node{{Addr: "10.0.0.1:7946"}},
		},
		{
			name:  "multiple seeds with uid",
			input: "10.0.0.1:7946,10.0.0.2:7946#42,10.0.0.3:7946",
			want: []swim.Node{
				{Addr: "10.0.0.1:7946"},
				{Addr: "10.0.0.2:7946", UID: 42},
				{Addr: "10.0.0.3:7946"},
			},
		},
		{
			name:  "with spaces and trailing comma",
			input: " 10.0.0.1:7946 , 10.0.0.2:7946 ,",
			want: []swim.Node{
				{Addr: "10.0.0.1:7946"},
				{Addr: "10.0.0.2:7946"},
			},
		},
		{
			name:    "invalid uid",
			input:   "10.0.0.1:7946#nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeeds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSeeds() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSeeds() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSeeds()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memberd.yaml")
	data := `
listen_addr: 0.0.0.0:7946
seeds: "10.0.0.1:7946,10.0.0.2:7946#7"
unreachability: true
protocol_period: 2s
ping_timeout: 500ms
log_level: debug
etcd:
  endpoints:
    - http://etcd:2379
  namespace: /test/nodes
  lease_ttl_seconds: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:7946" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.HTTPAddr != Default().HTTPAddr {
		t.Errorf("HTTPAddr should keep its default, got %q", cfg.HTTPAddr)
	}
	if !cfg.Unreachability {
		t.Error("Unreachability should be true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if len(cfg.Etcd.Endpoints) != 1 || cfg.Etcd.Endpoints[0] != "http://etcd:2379" {
		t.Errorf("Etcd.Endpoints = %v", cfg.Etcd.Endpoints)
	}
	if cfg.Etcd.LeaseTTLSeconds != 5 {
		t.Errorf("Etcd.LeaseTTLSeconds = %d, want 5", cfg.Etcd.LeaseTTLSeconds)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if settings.ProtocolPeriod != 2*time.Second {
		t.Errorf("ProtocolPeriod = %v, want 2s", settings.ProtocolPeriod)
	}
	if settings.PingTimeout != 500*time.Millisecond {
		t.Errorf("PingTimeout = %v, want 500ms", settings.PingTimeout)
	}
	if !settings.ExtensionUnreachability {
		t.Error("ExtensionUnreachability should be true")
	}
	if len(settings.InitialContactPoints) != 2 {
		t.Fatalf("InitialContactPoints = %v, want 2 seeds", settings.InitialContactPoints)
	}
	if settings.InitialContactPoints[1].UID != 7 {
		t.Errorf("second seed UID = %d, want 7", settings.InitialContactPoints[1].UID)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	def := Default()
	if cfg.ListenAddr != def.ListenAddr || cfg.HTTPAddr != def.HTTPAddr ||
		cfg.LogLevel != def.LogLevel || cfg.Etcd.Namespace != def.Etcd.Namespace {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MEMBERD_LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("MEMBERD_SEEDS", "10.0.0.9:7946")
	t.Setenv("MEMBERD_ETCD_ENDPOINTS", "http://a:2379, http://b:2379,")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("ListenAddr = %q, want env override", cfg.ListenAddr)
	}
	if cfg.Seeds != "10.0.0.9:7946" {
		t.Errorf("Seeds = %q, want env override", cfg.Seeds)
	}
	if len(cfg.Etcd.Endpoints) != 2 || cfg.Etcd.Endpoints[1] != "http://b:2379" {
		t.Errorf("Etcd.Endpoints = %v, want two trimmed endpoints", cfg.Etcd.Endpoints)
	}
	if cfg.HTTPAddr != Default().HTTPAddr {
		t.Errorf("HTTPAddr = %q, unset variables must not override", cfg.HTTPAddr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing config file")
	}
}

func TestSettings_InvalidDuration(t *testing.T) {
	cfg := Default()
	cfg.ProtocolPeriod = "not-a-duration"
	if _, err := cfg.Settings(); err == nil {
		t.Error("Expected error for an unparseable duration")
	}
}

func TestSettings_InvalidCombinationRejected(t *testing.T) {
	cfg := Default()
	cfg.ProtocolPeriod = "100ms"
	cfg.PingTimeout = "200ms"
	if _, err := cfg.Settings(); err == nil {
		t.Error("Expected validation error when ping timeout exceeds protocol period")
	}
}
