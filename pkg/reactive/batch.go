package reactive

import (
	"runtime"
	"sync"
)

// batchContext holds the batching state for a goroutine.
// Each goroutine gets its own context so a batch opened on the event loop
// never interleaves with notifications from other goroutines.
type batchContext struct {
	// batchDepth tracks nested Batch() calls.
	// When > 0, signal updates queue notifications instead of firing immediately.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when batch completes.
	// Deduplicated by ID before notification.
	pendingUpdates []Listener
}

// batchContexts stores per-goroutine batch contexts.
var batchContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the runtime stack header ("goroutine <id> ...").
// Implementation detail; never exposed.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getBatchContext returns the batch context for the current goroutine,
// creating one if needed.
func getBatchContext() *batchContext {
	gid := getGoroutineID()

	if ctx, ok := batchContexts.Load(gid); ok {
		return ctx.(*batchContext)
	}

	ctx := &batchContext{}
	batchContexts.Store(gid, ctx)
	return ctx
}

func getBatchDepth() int {
	return getBatchContext().batchDepth
}

func queuePendingUpdate(l Listener) {
	ctx := getBatchContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

func drainPendingUpdates() []Listener {
	ctx := getBatchContext()
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	return updates
}

// Batch groups multiple signal updates into a single notification phase.
// All signal updates within the batch function are collected, deduplicated,
// and then all affected listeners are notified once when the batch completes.
//
// This is how the toggle controller updates a vote direction and its score
// without the presentation layer ever observing an inconsistent pair.
//
// Batches can be nested. Notifications only fire when the outermost batch
// completes.
func Batch(fn func()) {
	ctx := getBatchContext()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	unique := make([]Listener, 0, len(updates))

	for _, listener := range updates {
		id := listener.ID()
		if !seen[id] {
			seen[id] = true
			unique = append(unique, listener)
		}
	}

	for _, listener := range unique {
		listener.MarkDirty()
	}
}
