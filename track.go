package drain

import (
	"sync/atomic"
	"time"

	"github.com/ygrebnov/drain/metrics"
)

// Tracked re-implements a source's listener-registration surface with
// completion-aware handler shapes. Listeners registered through Tracked are
// wrapped before being delegated to the raw source:
//
//   - each raw item increments the pending counter before the item handler
//     runs, and the handler's done callback decrements it;
//   - the raw end event latches exhaustion before the end handler runs, and
//     the handler's done callback arms the success path;
//   - the raw error event hands the gate's fire directly to the error
//     handler as its done callback.
//
// The terminal callback passed to Track fires exactly once: with the first
// per-item error, with whatever the error handler signals on a source error,
// or with nil once the end handler and every started item handler have
// completed.
//
// OnItem may be called multiple times; every registration is tracked
// independently, so one raw item then accounts one pending handler per
// registration. Register OnEnd and OnError at most once each: a second end
// listener would observe the exhaustion latch already set and be reported as
// a contract violation.
type Tracked[T any] struct {
	src   Source[T]
	gate  *gate
	state *state
	cfg   config

	started time.Time

	itemsStarted   metrics.Counter
	itemsCompleted metrics.Counter
	itemsPending   metrics.UpDownCounter
	itemSeconds    metrics.Histogram
	drainSeconds   metrics.Histogram
	completionsOK  metrics.Counter
	completionsErr metrics.Counter
}

// Track wraps src so that the completion of asynchronous per-item handlers is
// coordinated into a single terminal outcome, delivered to onAllDone exactly
// once. It returns the wrapper for listener registration and chaining; the
// raw source is not mutated.
//
// Track itself never blocks and provides no cancellation: if a handler never
// invokes its done callback, or the source never emits a terminal event,
// onAllDone never fires. Both are caller/source contract requirements.
func Track[T any](src Source[T], onAllDone func(error), opts ...Option) (*Tracked[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if onAllDone == nil {
		return nil, ErrNilCallback
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	t := &Tracked[T]{src: src, cfg: cfg, started: time.Now()}

	p := cfg.Metrics
	t.itemsStarted = p.Counter("drain_items_started",
		metrics.WithDescription("per-item handlers invoked"))
	t.itemsCompleted = p.Counter("drain_items_completed",
		metrics.WithDescription("per-item handlers that signaled completion"))
	t.itemsPending = p.UpDownCounter("drain_items_pending",
		metrics.WithDescription("per-item handlers currently in flight"))
	t.itemSeconds = p.Histogram("drain_item_seconds",
		metrics.WithDescription("per-item handler duration"), metrics.WithUnit("seconds"))
	t.drainSeconds = p.Histogram("drain_total_seconds",
		metrics.WithDescription("time from Track to the terminal outcome"), metrics.WithUnit("seconds"))
	t.completionsOK = p.Counter("drain_completions_ok",
		metrics.WithDescription("coordinations that completed without error"))
	t.completionsErr = p.Counter("drain_completions_error",
		metrics.WithDescription("coordinations that completed with an error"))

	t.gate = newGate(func(err error) {
		t.drainSeconds.Record(time.Since(t.started).Seconds())
		if err != nil {
			t.completionsErr.Add(1)
		} else {
			t.completionsOK.Add(1)
		}
		onAllDone(err)
	})
	t.state = newState(t.gate)

	return t, nil
}

// OnItem registers fn against the raw source's item events. fn receives each
// item together with a fresh single-use done callback and must eventually
// invoke it exactly once; a non-nil error makes that error the terminal
// outcome immediately, short-circuiting any still-pending handlers.
func (t *Tracked[T]) OnItem(fn ItemHandler[T]) {
	t.src.OnItem(func(item T) {
		if !t.state.itemStart() {
			// Item after end: drop rather than corrupt the pending count.
			t.violation(ErrItemAfterEnd)
			return
		}
		t.itemsStarted.Add(1)
		t.itemsPending.Add(1)
		fn(item, t.newItemDone())
	})
}

// newItemDone builds the single-use completion closure for one item arrival.
func (t *Tracked[T]) newItemDone() func(error) {
	var used atomic.Bool
	start := time.Now()
	return func(err error) {
		if !used.CompareAndSwap(false, true) {
			t.violation(ErrItemDoneTwice)
			return
		}
		t.itemsCompleted.Add(1)
		t.itemsPending.Add(-1)
		t.itemSeconds.Record(time.Since(start).Seconds())
		t.state.itemDone(err)
	}
}

// OnEnd registers fn against the raw source's end event. Exhaustion latches
// before fn runs, so no success outcome can fire without the end signal
// having been observed. fn must eventually invoke done exactly once; success
// then fires as soon as no item handlers remain pending — immediately if the
// pipeline has already drained, otherwise on the last pending completion.
func (t *Tracked[T]) OnEnd(fn EndHandler) {
	t.src.OnEnd(func() {
		if !t.state.sourceEnd() {
			t.violation(ErrEndAfterEnd)
			return
		}
		var used atomic.Bool
		fn(func() {
			if !used.CompareAndSwap(false, true) {
				t.violation(ErrEndDoneTwice)
				return
			}
			t.state.endComplete()
		})
	})
}

// OnError registers fn against the raw source's error events. fn's done
// callback is the terminal gate itself: whatever fn signals, including nil,
// becomes the final outcome. The coordinator imposes no error value of its
// own on this path.
func (t *Tracked[T]) OnError(fn ErrorHandler) {
	t.src.OnError(func(err error) {
		fn(err, t.gate.fire)
	})
}

// Done reports whether the terminal outcome has fired. After that the
// coordinator is inert: intercepted events still run their handlers, but no
// completion they signal can have an externally observable effect.
func (t *Tracked[T]) Done() bool {
	return t.gate.done()
}

func (t *Tracked[T]) violation(err error) {
	if t.cfg.ViolationHook != nil {
		t.cfg.ViolationHook(err)
	}
}
