package swim

import (
	"fmt"
	"time"
)

const (
	// DefaultProtocolPeriod is the base interval between protocol ticks.
	DefaultProtocolPeriod = 1 * time.Second
	// DefaultPingTimeout is the base deadline for a direct probe.
	DefaultPingTimeout = 300 * time.Millisecond
	// DefaultIndirectProbeCount is the number of relays asked to probe
	// a target that failed a direct probe.
	DefaultIndirectProbeCount = 3
	// DefaultMaxLocalHealthMultiplier bounds how far local-health
	// feedback may stretch intervals and timeouts.
	DefaultMaxLocalHealthMultiplier = 8
	// DefaultSuspicionTimeoutMin is the floor of the suspicion window.
	DefaultSuspicionTimeoutMin = 3 * time.Second
	// DefaultSuspicionTimeoutMax is the ceiling of the suspicion window,
	// applied to a suspicion with no confirmations.
	DefaultSuspicionTimeoutMax = 10 * time.Second
	// DefaultGossipMaxTransmissions is how many times a rumor is
	// piggybacked before it is dropped from the gossip queue.
	DefaultGossipMaxTransmissions = 8
	// DefaultGossipMaxPiggyback caps how many rumors ride on one message.
	DefaultGossipMaxPiggyback = 12
	// DefaultBootstrapPingTimeout is the fixed deadline for
	// initial-contact probes.
	DefaultBootstrapPingTimeout = 1 * time.Second
	// DefaultBootstrapRetryInterval is the delay before re-attempting
	// an initial contact that did not answer.
	DefaultBootstrapRetryInterval = 5 * time.Second
)

// Settings carries the knobs recognized by the shell and the reference
// engine. The zero value is not usable; start from DefaultSettings.
type Settings struct {
	// InitialContactPoints are probed at startup to join the cluster;
	// a probe that fails is retried every BootstrapRetryInterval until
	// BootstrapMaxAttempts, if set, is reached.
	InitialContactPoints []Node

	// ExtensionUnreachability switches the suspicion escalation target
	// from dead to unreachable, leaving the final dead transition to an
	// explicit confirm-dead call.
	ExtensionUnreachability bool

	ProtocolPeriod           time.Duration
	PingTimeout              time.Duration
	IndirectProbeCount       int
	MaxLocalHealthMultiplier int
	SuspicionTimeoutMin      time.Duration
	SuspicionTimeoutMax      time.Duration
	GossipMaxTransmissions   int
	GossipMaxPiggyback       int

	// BootstrapRetryInterval is the delay between initial-contact
	// attempts; BootstrapMaxAttempts caps them, 0 meaning unbounded.
	BootstrapRetryInterval time.Duration
	BootstrapMaxAttempts   int
}

// DefaultSettings returns settings with every knob at its default.
func DefaultSettings() Settings {
	return Settings{
		ProtocolPeriod:           DefaultProtocolPeriod,
		PingTimeout:              DefaultPingTimeout,
		IndirectProbeCount:       DefaultIndirectProbeCount,
		MaxLocalHealthMultiplier: DefaultMaxLocalHealthMultiplier,
		SuspicionTimeoutMin:      DefaultSuspicionTimeoutMin,
		SuspicionTimeoutMax:      DefaultSuspicionTimeoutMax,
		GossipMaxTransmissions:   DefaultGossipMaxTransmissions,
		GossipMaxPiggyback:       DefaultGossipMaxPiggyback,
		BootstrapRetryInterval:   DefaultBootstrapRetryInterval,
	}
}

// Validate checks settings consistency.
func (s Settings) Validate() error {
	if s.ProtocolPeriod <= 0 {
		return fmt.Errorf("protocol period must be positive, got %v", s.ProtocolPeriod)
	}
	if s.PingTimeout <= 0 {
		return fmt.Errorf("ping timeout must be positive, got %v", s.PingTimeout)
	}
	if s.PingTimeout >= s.ProtocolPeriod {
		return fmt.Errorf("ping timeout %v must be shorter than protocol period %v", s.PingTimeout, s.ProtocolPeriod)
	}
	if s.IndirectProbeCount < 0 {
		return fmt.Errorf("indirect probe count cannot be negative, got %d", s.IndirectProbeCount)
	}
	if s.MaxLocalHealthMultiplier < 0 {
		return fmt.Errorf("max local health multiplier cannot be negative, got %d", s.MaxLocalHealthMultiplier)
	}
	if s.SuspicionTimeoutMin > s.SuspicionTimeoutMax {
		return fmt.Errorf("suspicion timeout min %v exceeds max %v", s.SuspicionTimeoutMin, s.SuspicionTimeoutMax)
	}
	if s.BootstrapRetryInterval <= 0 {
		return fmt.Errorf("bootstrap retry interval must be positive, got %v", s.BootstrapRetryInterval)
	}
	if s.BootstrapMaxAttempts < 0 {
		return fmt.Errorf("bootstrap max attempts cannot be negative, got %d", s.BootstrapMaxAttempts)
	}
	return nil
}
