package reactive

import "testing"

func TestOwnerCleanupOrder(t *testing.T) {
	o := NewOwner(nil)

	var order []int
	o.OnCleanup(func() { order = append(order, 1) })
	o.OnCleanup(func() { order = append(order, 2) })

	o.Dispose()

	// Cleanups run in reverse registration order.
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("cleanup order = %v, want [2 1]", order)
	}
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	o := NewOwner(nil)

	ran := 0
	o.OnCleanup(func() { ran++ })

	o.Dispose()
	o.Dispose()

	if ran != 1 {
		t.Errorf("cleanup ran %d times, want 1", ran)
	}
	if !o.IsDisposed() {
		t.Error("IsDisposed() = false after Dispose")
	}
}

func TestOwnerDisposesChildren(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)
	grandchild := NewOwner(child)

	parent.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("descendants not disposed with parent")
	}
}

func TestOwnerCleanupAfterDispose(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()

	ran := false
	o.OnCleanup(func() { ran = true })

	if !ran {
		t.Error("cleanup registered after Dispose did not run immediately")
	}
}

func TestOwnerChildDisposeDetaches(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)

	child.Dispose()

	// Disposing the parent afterwards must not double-dispose the child.
	ran := 0
	parent.OnCleanup(func() { ran++ })
	parent.Dispose()

	if ran != 1 {
		t.Errorf("parent cleanup ran %d times, want 1", ran)
	}
}
