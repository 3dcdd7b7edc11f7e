package drain

import "context"

// Source is the raw push contract required of a wrapped source.
// A source emits zero or more item events followed by at most one terminal
// event (end or error). It must not emit item events after the end event;
// Track guards against that but treats it as a contract violation
// (see WithViolationHook).
//
// A source that never emits a terminal event never completes the
// coordination. That is a requirement on the source, not handled here.
type Source[T any] interface {
	// OnItem registers fn to be invoked once per emitted item.
	OnItem(fn func(item T))

	// OnEnd registers fn to be invoked when the source has no further items.
	OnEnd(fn func())

	// OnError registers fn to be invoked when the source fails.
	OnError(fn func(err error))
}

// Starter is implemented by sources that begin emitting only once started,
// such as ChannelSource. Drain and Collect start such sources after their
// listeners are registered, so no event can be emitted into an unregistered
// surface.
type Starter interface {
	Start(ctx context.Context)
}

// ItemHandler processes one item asynchronously. It must invoke done exactly
// once when processing finishes; a non-nil error makes that error the
// terminal outcome immediately.
type ItemHandler[T any] func(item T, done func(error))

// EndHandler reacts to the source's end-of-data signal. It must invoke done
// exactly once; the end signal itself carries no error by contract.
type EndHandler func(done func())

// ErrorHandler reacts to a source-level failure. Its done callback is the
// terminal gate itself: whatever the handler signals, including nil,
// becomes the final outcome.
type ErrorHandler func(err error, done func(error))
