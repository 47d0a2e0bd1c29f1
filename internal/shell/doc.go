// Package shell drives a SWIM engine against a real network and a real
// clock. The engine decides; the shell executes: it feeds inbound
// protocol messages to the engine, carries out the directives the
// engine emits, drives protocol-period ticks with suspicion-timeout
// escalation, bootstraps against the configured contact points, and
// delivers reachability changes to the embedder.
//
// All engine state is owned by a single protocol loop. Every public
// entrypoint passes through the loop gate: it runs inline when already
// on the loop and re-enqueues itself otherwise, so every component in
// this package is single-threaded by construction.
package shell
