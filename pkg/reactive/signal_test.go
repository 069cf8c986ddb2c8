package reactive

import (
	"sync"
	"testing"
)

// countingListener records MarkDirty calls.
type countingListener struct {
	id    uint64
	mu    sync.Mutex
	count int
}

func newCountingListener() *countingListener {
	return &countingListener{id: nextID()}
}

func (c *countingListener) MarkDirty() {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
}

func (c *countingListener) ID() uint64 { return c.id }

func (c *countingListener) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(10)

	if got := s.Get(); got != 10 {
		t.Errorf("Get() = %d, want 10", got)
	}

	s.Set(20)
	if got := s.Get(); got != 20 {
		t.Errorf("Get() after Set = %d, want 20", got)
	}
}

func TestSignalNotifiesOnChange(t *testing.T) {
	s := NewSignal(0)
	l := newCountingListener()
	s.Subscribe(l)

	s.Set(1)
	if l.Count() != 1 {
		t.Errorf("notifications = %d, want 1", l.Count())
	}

	// Setting the same value must not notify.
	s.Set(1)
	if l.Count() != 1 {
		t.Errorf("notifications after no-op Set = %d, want 1", l.Count())
	}
}

func TestSignalSubscribeDeduplicates(t *testing.T) {
	s := NewSignal("a")
	l := newCountingListener()

	s.Subscribe(l)
	s.Subscribe(l)

	s.Set("b")
	if l.Count() != 1 {
		t.Errorf("double-subscribed listener notified %d times, want 1", l.Count())
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	s := NewSignal(0)
	l := newCountingListener()
	s.Subscribe(l)
	s.Unsubscribe(l)

	s.Set(1)
	if l.Count() != 0 {
		t.Errorf("unsubscribed listener notified %d times", l.Count())
	}
}

func TestSignalUpdate(t *testing.T) {
	s := NewSignal(5)
	s.Update(func(v int) int { return v * 2 })

	if got := s.Get(); got != 10 {
		t.Errorf("Update result = %d, want 10", got)
	}
}

func TestSignalWatch(t *testing.T) {
	s := NewSignal(0)

	var seen []int
	stop := s.Watch(func(v int) { seen = append(seen, v) })

	s.Set(1)
	s.Set(2)
	stop()
	s.Set(3)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("watched values = %v, want [1 2]", seen)
	}
}

func TestSignalWithEquals(t *testing.T) {
	// Treat values as equal mod 10: Set(12) over 2 should not notify.
	s := NewSignal(2).WithEquals(func(a, b int) bool { return a%10 == b%10 })
	l := newCountingListener()
	s.Subscribe(l)

	s.Set(12)
	if l.Count() != 0 {
		t.Errorf("custom-equal Set notified %d times, want 0", l.Count())
	}

	s.Set(13)
	if l.Count() != 1 {
		t.Errorf("changed Set notified %d times, want 1", l.Count())
	}
}

func TestSignalStructEquality(t *testing.T) {
	type pair struct{ A, B int }

	s := NewSignal(pair{1, 2})
	l := newCountingListener()
	s.Subscribe(l)

	s.Set(pair{1, 2}) // deep-equal, no notify
	if l.Count() != 0 {
		t.Errorf("deep-equal Set notified %d times, want 0", l.Count())
	}

	s.Set(pair{1, 3})
	if l.Count() != 1 {
		t.Errorf("changed struct Set notified %d times, want 1", l.Count())
	}
}
