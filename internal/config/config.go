package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"memberd/internal/swim"
)

// Config holds the daemon configuration. Duration fields are strings in
// Go duration syntax so they can come from YAML unchanged.
type Config struct {
	// ListenAddr is the address the gRPC protocol endpoint binds to.
	ListenAddr string `yaml:"listen_addr"`
	// HTTPAddr is the address of the HTTP surface (health, members,
	// metrics). Empty disables it.
	HTTPAddr string `yaml:"http_addr"`
	// Seeds is a comma-separated list of initial contact points in the
	// form "addr" or "addr#uid".
	Seeds string `yaml:"seeds"`

	Unreachability bool `yaml:"unreachability"`

	ProtocolPeriod      string `yaml:"protocol_period"`
	PingTimeout         string `yaml:"ping_timeout"`
	IndirectProbeCount  int    `yaml:"indirect_probe_count"`
	SuspicionTimeoutMin string `yaml:"suspicion_timeout_min"`
	SuspicionTimeoutMax string `yaml:"suspicion_timeout_max"`

	BootstrapRetryInterval string `yaml:"bootstrap_retry_interval"`
	BootstrapMaxAttempts   int    `yaml:"bootstrap_max_attempts"`

	LogLevel string `yaml:"log_level"`

	Etcd EtcdConfig `yaml:"etcd"`
}

// EtcdConfig configures optional etcd-based peer discovery.
type EtcdConfig struct {
	// Endpoints lists the etcd endpoints. Empty disables discovery.
	Endpoints []string `yaml:"endpoints"`
	// Namespace is the key prefix nodes register under.
	Namespace string `yaml:"namespace"`
	// LeaseTTLSeconds is the registration lease TTL.
	LeaseTTLSeconds int64 `yaml:"lease_ttl_seconds"`
}

// Default returns the configuration the daemon starts from before the
// file and flags are applied.
func Default() Config {
	return Config{
		ListenAddr: "127.0.0.1:7946",
		HTTPAddr:   "127.0.0.1:7980",
		LogLevel:   "info",
		Etcd: EtcdConfig{
			Namespace:       "/memberd/nodes",
			LeaseTTLSeconds: 10,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays MEMBERD_* environment variables on the
// configuration. Environment wins over the file; flags win over both.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MEMBERD_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("MEMBERD_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("MEMBERD_SEEDS"); v != "" {
		c.Seeds = v
	}
	if v := os.Getenv("MEMBERD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MEMBERD_ETCD_ENDPOINTS"); v != "" {
		c.Etcd.Endpoints = splitList(v)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Settings converts the configuration into engine settings, parsing
// the seed list and every duration and validating the result.
func (c Config) Settings() (swim.Settings, error) {
	s := swim.DefaultSettings()
	s.ExtensionUnreachability = c.Unreachability
	if c.IndirectProbeCount > 0 {
		s.IndirectProbeCount = c.IndirectProbeCount
	}
	s.BootstrapMaxAttempts = c.BootstrapMaxAttempts

	seeds, err := ParseSeeds(c.Seeds)
	if err != nil {
		return swim.Settings{}, err
	}
	s.InitialContactPoints = seeds

	for _, d := range []struct {
		raw  string
		name string
		dst  *time.Duration
	}{
		{c.ProtocolPeriod, "protocol_period", &s.ProtocolPeriod},
		{c.PingTimeout, "ping_timeout", &s.PingTimeout},
		{c.SuspicionTimeoutMin, "suspicion_timeout_min", &s.SuspicionTimeoutMin},
		{c.SuspicionTimeoutMax, "suspicion_timeout_max", &s.SuspicionTimeoutMax},
		{c.BootstrapRetryInterval, "bootstrap_retry_interval", &s.BootstrapRetryInterval},
	} {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return swim.Settings{}, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = v
	}

	if err := s.Validate(); err != nil {
		return swim.Settings{}, err
	}
	return s, nil
}

// ParseSeeds parses a comma-separated list of nodes in the format:
// "addr1,addr2#uid2,addr3"
func ParseSeeds(seedsStr string) ([]swim.Node, error) {
	if seedsStr == "" {
		return nil, nil
	}

	parts := strings.Split(seedsStr, ",")
	seeds := make([]swim.Node, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		node, err := swim.ParseNode(part)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", part, err)
		}
		seeds = append(seeds, node)
	}

	return seeds, nil
}
