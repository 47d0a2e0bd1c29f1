package loop

import (
	"testing"
	"time"
)

func TestManualClock_AdvanceFiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	var order []string
	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(time.Second)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("Expected [a b c], got %v", order)
	}
}

func TestManualClock_AdvancePartial(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	fired := 0
	clock.AfterFunc(100*time.Millisecond, func() { fired++ })
	clock.AfterFunc(500*time.Millisecond, func() { fired++ })

	clock.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Errorf("Expected 1 timer fired after 200ms, got %d", fired)
	}
	clock.Advance(300 * time.Millisecond)
	if fired != 2 {
		t.Errorf("Expected 2 timers fired after 500ms, got %d", fired)
	}
}

func TestManualClock_Stop(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	stop := clock.AfterFunc(100*time.Millisecond, func() {
		t.Error("stopped timer fired")
	})
	if !stop() {
		t.Error("first Stop should report true")
	}
	if stop() {
		t.Error("second Stop should report false")
	}
	clock.Advance(time.Second)
}

func TestManualClock_SameDeadlineFiresInRegistrationOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		clock.AfterFunc(time.Second, func() { order = append(order, i) })
	}
	clock.Advance(time.Second)

	for i, v := range order {
		if v != i {
			t.Fatalf("Expected registration order, got %v", order)
		}
	}
}

func TestManualClock_Now(t *testing.T) {
	start := time.Unix(100, 0)
	clock := NewManualClock(start)
	if !clock.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", clock.Now(), start)
	}
	clock.Advance(time.Minute)
	if !clock.Now().Equal(start.Add(time.Minute)) {
		t.Errorf("Now() = %v after advance, want %v", clock.Now(), start.Add(time.Minute))
	}
}

func TestManualClock_TimerScheduledFromTimer(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	var chained bool
	clock.AfterFunc(100*time.Millisecond, func() {
		clock.AfterFunc(100*time.Millisecond, func() { chained = true })
	})

	clock.Advance(100 * time.Millisecond)
	if chained {
		t.Fatal("chained timer fired too early")
	}
	clock.Advance(100 * time.Millisecond)
	if !chained {
		t.Fatal("chained timer did not fire")
	}
}
