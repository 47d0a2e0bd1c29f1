package loop

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Loop is a single-goroutine FIFO executor. Everything the shell does
// to the engine happens on one Loop; external callers trampoline in
// via Do. Tasks never block on each other: a task that needs to wait
// schedules a timer or registers a completion instead.
type Loop struct {
	log   *zap.Logger
	clock Clock

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	started bool
	stopped bool

	gid  atomic.Uint64
	done chan struct{}
}

// New creates a stopped loop. Call Start to begin draining tasks.
func New(clock Clock, log *zap.Logger) *Loop {
	l := &Loop{
		log:   log,
		clock: clock,
		done:  make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Start launches the loop goroutine. Calling Start twice panics.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		panic("loop: already started")
	}
	l.started = true
	l.mu.Unlock()
	go l.run()
}

// Stop shuts the loop down after the tasks already queued have run.
// Further submissions are dropped. Stop blocks until the loop
// goroutine has exited; it must not be called from the loop itself.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.stopped = true
	l.cond.Signal()
	l.mu.Unlock()
	<-l.done
}

// OnLoop reports whether the caller is running on the loop goroutine.
func (l *Loop) OnLoop() bool {
	id := l.gid.Load()
	return id != 0 && id == goroutineID()
}

// Do runs fn inline when already on the loop and enqueues it
// otherwise. This is the executor gate every shell entrypoint passes
// through.
func (l *Loop) Do(fn func()) {
	if l.OnLoop() {
		fn()
		return
	}
	l.Enqueue(fn)
}

// Enqueue appends fn to the FIFO queue. Submissions after Stop are
// dropped. It reports whether the task was accepted.
func (l *Loop) Enqueue(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return false
	}
	l.queue = append(l.queue, fn)
	l.cond.Signal()
	return true
}

// Sync blocks until every task submitted before it has run. On the
// loop itself it is a no-op; after Stop it returns immediately.
func (l *Loop) Sync() {
	if l.OnLoop() {
		return
	}
	done := make(chan struct{})
	if !l.Enqueue(func() { close(done) }) {
		return
	}
	<-done
}

// Now returns the loop clock's current time.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// ScheduleOnce schedules fn to run on the loop after delay. The key
// names the schedule for logging. Cancelling the returned handle
// before the task has started prevents it from running.
func (l *Loop) ScheduleOnce(key string, delay time.Duration, fn func()) *Cancellable {
	c := &Cancellable{key: key}
	c.stop = l.clock.AfterFunc(delay, func() {
		if !l.Enqueue(func() {
			if c.Cancelled() {
				return
			}
			fn()
		}) {
			l.log.Debug("timer fired after loop stop", zap.String("key", key))
		}
	})
	return c
}

func (l *Loop) run() {
	defer close(l.done)
	l.gid.Store(goroutineID())
	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopped {
			l.cond.Wait()
		}
		if len(l.queue) == 0 && l.stopped {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()
		fn()
	}
}

// goroutineID parses the current goroutine's id out of the runtime
// stack header ("goroutine 18 [running]:").
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	i := bytes.IndexByte(header, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
