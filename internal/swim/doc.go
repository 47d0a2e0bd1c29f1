// Package swim defines the core model shared by the failure-detector
// shell and the protocol engine: node identities, member statuses,
// the directive variants the engine emits, and the Engine and Peer
// interfaces the shell drives. The engine owns the SWIM decision
// logic; the shell owns timing, ordering and delivery.
package swim
