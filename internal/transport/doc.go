// Package transport carries protocol messages between nodes over gRPC.
//
// Every protocol message travels as a single Envelope on the Swim.Send
// RPC; the reply confirms delivery to the remote process, nothing more.
// Probe correlation happens here: Ping and PingRequest register a
// pending entry keyed by sequence number, and the matching Ack or Nack
// (or the deadline timer) resolves it exactly once. Inbound pings and
// ping requests are handed to the bound Handler; completions and
// handler calls run on transport goroutines, never on the protocol
// loop.
package transport
