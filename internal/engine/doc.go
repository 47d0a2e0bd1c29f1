// Package engine is the SWIM protocol instance: the pure decision core
// the shell drives. It owns the member table, incarnation numbers, the
// gossip queue and the local health multiplier, and answers every
// event with directives for the shell to execute. The engine performs
// no I/O and schedules nothing; it must only be called from the
// shell's protocol loop.
package engine
