package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	MessagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memberd",
			Name:      "messages_sent_total",
			Help:      "Protocol messages sent, by kind.",
		},
		[]string{"kind"},
	)

	MessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memberd",
			Name:      "messages_received_total",
			Help:      "Protocol messages received, by kind.",
		},
		[]string{"kind"},
	)

	ProbeOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memberd",
			Name:      "probe_outcomes_total",
			Help:      "Completed probes, by outcome (ack, nack, timeout, error).",
		},
		[]string{"outcome"},
	)

	ProbesInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "memberd",
			Name:      "probes_in_flight",
			Help:      "Probes awaiting a response or timeout.",
		},
	)

	Members = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "memberd",
			Name:      "members",
			Help:      "Known members, by status.",
		},
		[]string{"status"},
	)

	LocalHealthMultiplier = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "memberd",
			Name:      "local_health_multiplier",
			Help:      "Current local health multiplier.",
		},
	)

	ProtocolPeriods = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "memberd",
			Name:      "protocol_periods_total",
			Help:      "Protocol periods driven since start.",
		},
	)

	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "memberd",
			Name:      "build_info",
			Help:      "Build info (constant 1, labeled by version and git_sha).",
		},
		[]string{"version", "git_sha"},
	)

	startTime = time.Now()
	uptime    = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "memberd",
			Name:      "uptime_seconds",
			Help:      "Process uptime in seconds.",
		},
		func() float64 { return time.Since(startTime).Seconds() },
	)
)

func init() {
	Registry.MustRegister(
		MessagesSent, MessagesReceived,
		ProbeOutcomes, ProbesInFlight,
		Members, LocalHealthMultiplier, ProtocolPeriods,
		buildInfo, uptime,
	)
}

// Uptime reports how long the process has been running.
func Uptime() time.Duration {
	return time.Since(startTime)
}

// MetricsHandler exposes /metrics. Mount it with
// mux.Handle("/metrics", telemetry.MetricsHandler()).
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// SetBuildInfo should be called once at startup, e.g. with
// ldflags-provided values.
func SetBuildInfo(version, gitSHA string) {
	buildInfo.WithLabelValues(version, gitSHA).Set(1)
}
