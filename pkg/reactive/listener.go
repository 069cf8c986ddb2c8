package reactive

// Listener is anything that can be notified when a signal changes.
// The presentation layer implements this to schedule re-renders; the
// bookmark store implements it to fan changes out to views.
type Listener interface {
	// MarkDirty notifies the listener that a subscribed signal changed.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication during batch processing.
	ID() uint64
}

// Cleanup is a function registered with an Owner to release a resource
// when the owning scope is disposed.
type Cleanup func()

// funcListener adapts a plain function to the Listener interface.
type funcListener struct {
	id uint64
	fn func()
}

func (f *funcListener) MarkDirty() { f.fn() }
func (f *funcListener) ID() uint64 { return f.id }
