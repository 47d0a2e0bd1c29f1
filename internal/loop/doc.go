// Package loop provides the single-threaded execution context the
// failure-detector shell runs on: a FIFO task loop owned by one
// goroutine, cancellable one-shot timers that fire on that loop, and
// an injectable clock so timing behavior is deterministic under test.
package loop
