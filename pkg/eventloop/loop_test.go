package eventloop

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDispatchRunsInOrder(t *testing.T) {
	l := New()
	defer l.Close()

	var order []int
	done := make(chan struct{})

	for i := 1; i <= 3; i++ {
		i := i
		l.Dispatch(func() { order = append(order, i) })
	}
	l.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatched functions did not run")
	}

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("execution order = %v, want [1 2 3]", order)
	}
}

func TestSyncWaitsForCompletion(t *testing.T) {
	l := New()
	defer l.Close()

	ran := false
	if ok := l.Sync(func() { ran = true }); !ok {
		t.Fatal("Sync returned false on a live loop")
	}
	if !ran {
		t.Error("Sync returned before fn ran")
	}
}

func TestCloseDrainsQueue(t *testing.T) {
	l := New()

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		l.Dispatch(func() { count.Add(1) })
	}

	l.Close()

	if got := count.Load(); got != 10 {
		t.Errorf("ran %d queued functions after Close, want 10", got)
	}
}

func TestDispatchAfterCloseIsDiscarded(t *testing.T) {
	l := New()
	l.Close()

	// Must not panic, must not run.
	ran := false
	l.Dispatch(func() { ran = true })

	if ran {
		t.Error("callback ran after Close")
	}
	if ok := l.Sync(func() {}); ok {
		t.Error("Sync succeeded after Close")
	}
}

func TestCloseIdempotent(t *testing.T) {
	l := New()
	l.Close()
	l.Close()
}
