package toggle

import (
	"context"
	"log/slog"

	"github.com/fcavalcantirj/solvr-ui/pkg/reactive"
	"github.com/fcavalcantirj/solvr-ui/pkg/toast"
)

// Ctx is the runtime contract a controller needs from its surroundings:
// a way to serialize work onto the owning event loop and the standard
// context remote calls derive from.
type Ctx interface {
	// Dispatch queues a function to run on the owning event loop.
	// Safe to call from any goroutine.
	Dispatch(fn func())

	// StdContext returns the standard library context for remote calls.
	StdContext() context.Context
}

// Transition computes the next value from the current visible value and a
// user intent. It must be pure: the controller replays transitions to
// reconcile failed calls.
type Transition[V, I any] func(current V, intent I) V

// Remote issues the mutation for a transition that was computed from
// `from` under `intent`. It returns only success or failure; the
// controller never reads a new state out of a response.
type Remote[V, I any] func(ctx context.Context, from V, intent I) error

// Read fetches the authoritative current value once, on construction.
type Read[V any] func(ctx context.Context) (V, error)

// pendingOp correlates one in-flight mutation with the toggle instance.
type pendingOp[I any] struct {
	seq     uint64
	intent  I
	settled bool
	failed  bool
}

// Controller is the generic optimistic toggle controller.
//
// All mutable fields are owned by the event loop: every entry point either
// runs on the loop already (settle callbacks) or dispatches onto it
// (Toggle, Dispose), so no locking is needed.
type Controller[V, I any] struct {
	ctx        Ctx
	transition Transition[V, I]
	remote     Remote[V, I]
	read       Read[V]

	feature       string
	inert         bool
	logger        *slog.Logger
	notifier      toast.Notifier
	metrics       *Metrics
	failureNotice string

	state *reactive.Signal[State[V]]
	busy  *reactive.Signal[bool]

	// Loop-owned reconciliation state.
	confirmed V
	pending   []*pendingOp[I]
	seq       uint64
	disposed  bool
}

// Options configure a controller; zero values are usable.
type Options struct {
	// Owner, when set, disposes the controller with the owning view.
	Owner *reactive.Owner

	// Notifier receives a transient notice when a mutation fails.
	// nil disables notices.
	Notifier toast.Notifier

	// Metrics, when set, counts applied/failed/discarded mutations.
	Metrics *Metrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Inert forces the controller inert (self-target guard).
	Inert bool

	// FailureNotice is the notice text shown on mutation failure.
	FailureNotice string
}

// New creates a controller and, unless it is inert, starts the single
// initial read of the authoritative state.
func New[V, I any](ctx Ctx, feature string, transition Transition[V, I], remote Remote[V, I], read Read[V], opts Options) *Controller[V, I] {
	c := &Controller[V, I]{
		ctx:        ctx,
		transition: transition,
		remote:     remote,
		read:       read,
		feature:    feature,
		inert:      opts.Inert,
		logger:     opts.Logger,
		notifier:   opts.Notifier,
		metrics:    opts.Metrics,
		state:      reactive.NewSignal(State[V]{Kind: KindUnknown}),
		busy:       reactive.NewSignal(false),
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if opts.FailureNotice == "" {
		opts.FailureNotice = "Something went wrong, please try again"
	}
	c.failureNotice = opts.FailureNotice

	if opts.Owner != nil {
		opts.Owner.OnCleanup(c.Dispose)
	}

	if c.inert {
		c.state.Set(State[V]{Kind: KindInert})
		return c
	}

	c.startRead()
	return c
}

// startRead performs the one-shot authoritative read. Until it resolves
// the state stays unknown; on failure it stays unknown forever (the
// owning view may re-mount to retry).
func (c *Controller[V, I]) startRead() {
	go func() {
		value, err := c.read(c.ctx.StdContext())
		c.ctx.Dispatch(func() {
			if c.disposed {
				return
			}
			if err != nil {
				c.logger.Debug("initial read failed, control stays hidden",
					"feature", c.feature, "error", err)
				if c.metrics != nil {
					c.metrics.readFailures.WithLabelValues(c.feature).Inc()
				}
				return
			}
			c.confirmed = value
			c.state.Set(State[V]{Kind: KindReady, Value: value})
		})
	}()
}

// Current returns the externally observable state.
func (c *Controller[V, I]) Current() State[V] {
	return c.state.Get()
}

// StateSignal exposes the state for subscription by the presentation layer.
func (c *Controller[V, I]) StateSignal() *reactive.Signal[State[V]] {
	return c.state
}

// IsBusy reports whether any mutation is in flight. A UI affordance only:
// the controller stays correct when Toggle is called while busy.
func (c *Controller[V, I]) IsBusy() bool {
	return c.busy.Get()
}

// BusySignal exposes the busy flag for subscription.
func (c *Controller[V, I]) BusySignal() *reactive.Signal[bool] {
	return c.busy
}

// Toggle applies the transition for intent to the visible state
// immediately and issues the corresponding remote call. Ignored while the
// controller is inert, unknown, or disposed.
func (c *Controller[V, I]) Toggle(intent I) {
	c.ctx.Dispatch(func() {
		c.toggle(intent)
	})
}

// toggle runs on the event loop.
func (c *Controller[V, I]) toggle(intent I) {
	if c.disposed || c.inert {
		return
	}

	st := c.state.Get()
	if st.Kind != KindReady {
		// Initial read unresolved; caller error, silently ignored.
		return
	}

	// The transition reads the current visible (already optimistic)
	// value, not the last confirmed one: that is the race rule.
	from := st.Value
	next := c.transition(from, intent)

	c.seq++
	op := &pendingOp[I]{seq: c.seq, intent: intent}
	c.pending = append(c.pending, op)

	reactive.Batch(func() {
		c.state.Set(State[V]{Kind: KindReady, Value: next})
		c.busy.Set(true)
	})

	if c.metrics != nil {
		c.metrics.applied.WithLabelValues(c.feature).Inc()
	}

	go func() {
		err := c.remote(c.ctx.StdContext(), from, intent)
		c.ctx.Dispatch(func() {
			c.settle(op, err)
		})
	}()
}

// settle runs on the event loop when a mutation completes.
func (c *Controller[V, I]) settle(op *pendingOp[I], err error) {
	if c.disposed {
		// Unmount discard: the result is thrown away, nothing mutates.
		if c.metrics != nil {
			c.metrics.discarded.WithLabelValues(c.feature).Inc()
		}
		return
	}

	op.settled = true
	op.failed = err != nil

	if err != nil {
		c.logger.Debug("mutation failed, reverting",
			"feature", c.feature, "error", err)
		if c.metrics != nil {
			c.metrics.failed.WithLabelValues(c.feature).Inc()
		}
		if c.notifier != nil {
			c.notifier.Notify(toast.LevelError, c.failureNotice)
		}
	}

	c.reconcile()
}

// reconcile folds settled operations into the confirmed base in issue
// order, then recomputes the visible value by replaying the surviving
// in-flight intents on top of it.
//
// A failed operation drops out of the replay, so exactly its own effect
// is undone and every later toggle keeps its contribution.
func (c *Controller[V, I]) reconcile() {
	// Advance the confirmed base past every settled head operation.
	for len(c.pending) > 0 && c.pending[0].settled {
		head := c.pending[0]
		if !head.failed {
			c.confirmed = c.transition(c.confirmed, head.intent)
		}
		c.pending = c.pending[1:]
	}

	// Replay the survivors: everything except failed operations. A
	// settled success stuck behind an unsettled earlier op keeps its
	// effect through the replay until the base can advance past it.
	// With no survivors the visible value is the confirmed base itself
	// (plain revert, or plain success).
	visible := c.confirmed
	for _, op := range c.pending {
		if !op.failed {
			visible = c.transition(visible, op.intent)
		}
	}

	reactive.Batch(func() {
		c.state.Set(State[V]{Kind: KindReady, Value: visible})
		c.busy.Set(len(c.pending) > 0)
	})
}

// Dispose detaches the controller from its view. In-flight completions
// become no-ops; no further state mutation is possible. Idempotent.
func (c *Controller[V, I]) Dispose() {
	c.ctx.Dispatch(func() {
		c.disposed = true
	})
}
