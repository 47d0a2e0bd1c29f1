// Package telemetry owns the Prometheus registry and the collectors
// the daemon exports: message and probe counters, membership gauges,
// and build information.
package telemetry
