package loop

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestLoop(t *testing.T, clock Clock) *Loop {
	t.Helper()
	l := New(clock, zap.NewNop())
	l.Start()
	t.Cleanup(l.Stop)
	return l
}

func TestLoop_FIFOOrder(t *testing.T) {
	l := newTestLoop(t, SystemClock())

	var mu sync.Mutex
	var order []int
	for i := 0; i < 100; i++ {
		i := i
		l.Enqueue(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	l.Sync()

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 100 {
		t.Fatalf("Expected 100 tasks to run, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("Task %d ran at position %d", v, i)
		}
	}
}

func TestLoop_DoRunsInlineOnLoop(t *testing.T) {
	l := newTestLoop(t, SystemClock())

	var onLoop, innerRanInline bool
	done := make(chan struct{})
	l.Do(func() {
		onLoop = l.OnLoop()
		// A nested Do from the loop itself must run inline, not
		// deadlock waiting for the queue.
		l.Do(func() { innerRanInline = true })
		close(done)
	})
	<-done

	if !onLoop {
		t.Error("task submitted via Do should observe OnLoop() == true")
	}
	if !innerRanInline {
		t.Error("nested Do should have run inline")
	}
	if l.OnLoop() {
		t.Error("test goroutine should not report OnLoop() == true")
	}
}

func TestLoop_EnqueueAfterStop(t *testing.T) {
	l := New(SystemClock(), zap.NewNop())
	l.Start()
	l.Stop()

	if l.Enqueue(func() { t.Error("task ran after stop") }) {
		t.Error("Enqueue after Stop should report false")
	}
	// Sync after stop must not block.
	l.Sync()
}

func TestLoop_StopDrainsQueuedTasks(t *testing.T) {
	l := New(SystemClock(), zap.NewNop())

	var mu sync.Mutex
	ran := 0
	for i := 0; i < 10; i++ {
		l.Enqueue(func() {
			mu.Lock()
			ran++
			mu.Unlock()
		})
	}
	l.Start()
	l.Stop()

	mu.Lock()
	defer mu.Unlock()
	if ran != 10 {
		t.Errorf("Expected 10 tasks drained before stop, got %d", ran)
	}
}

func TestLoop_ScheduleOnce(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := newTestLoop(t, clock)

	fired := make(chan struct{})
	l.ScheduleOnce("test", 100*time.Millisecond, func() {
		if !l.OnLoop() {
			t.Error("scheduled task should run on the loop")
		}
		close(fired)
	})

	clock.Advance(99 * time.Millisecond)
	l.Sync()
	select {
	case <-fired:
		t.Fatal("task fired before its delay elapsed")
	default:
	}

	clock.Advance(1 * time.Millisecond)
	l.Sync()
	select {
	case <-fired:
	default:
		t.Fatal("task did not fire at its deadline")
	}
}

func TestLoop_ScheduleOnceCancel(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := newTestLoop(t, clock)

	c := l.ScheduleOnce("test", 100*time.Millisecond, func() {
		t.Error("cancelled task ran")
	})
	if c.Key() != "test" {
		t.Errorf("Key() = %q, want %q", c.Key(), "test")
	}
	c.Cancel()
	if !c.Cancelled() {
		t.Error("Cancelled() should report true after Cancel")
	}

	clock.Advance(time.Second)
	l.Sync()
}

func TestLoop_ScheduleOnceCancelAfterFireEnqueued(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := New(clock, zap.NewNop())

	// The timer fires while the loop is not yet draining, so the task
	// sits in the queue. Cancelling now must still prevent it.
	c := l.ScheduleOnce("test", time.Millisecond, func() {
		t.Error("task ran despite cancellation before start")
	})
	clock.Advance(time.Millisecond)
	c.Cancel()

	l.Start()
	defer l.Stop()
	l.Sync()
}

func TestCancellable_NilSafe(t *testing.T) {
	var c *Cancellable
	c.Cancel()
	if c.Cancelled() {
		t.Error("nil Cancellable should report Cancelled() == false")
	}
}
