package drain

import (
	"context"
	"sync"
)

// Drain attaches completion tracking to src, processes every item with handle
// on its own goroutine, and blocks until the terminal outcome is known.
// Source errors are forwarded verbatim as the outcome. A nil return means the
// source signaled end and every started handler completed without error.
//
// Cancellation only unblocks the caller: a ctx error is returned, but
// handlers already started keep running until they complete on their own.
//
// If src implements Starter it is started after registration, so a
// ChannelSource can be passed in unstarted.
func Drain[T any](ctx context.Context, src Source[T], handle func(context.Context, T) error, opts ...Option) error {
	outcome := make(chan error, 1)
	tracked, err := Track(src, func(err error) { outcome <- err }, opts...)
	if err != nil {
		return err
	}

	tracked.OnItem(func(item T, done func(error)) {
		go func() {
			done(handle(ctx, item))
		}()
	})
	tracked.OnEnd(func(done func()) {
		done()
	})
	tracked.OnError(func(err error, done func(error)) {
		done(err)
	})

	if s, ok := any(src).(Starter); ok {
		s.Start(ctx)
	}

	select {
	case err := <-outcome:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Collect drains src into a slice, appending items synchronously in emission
// order, and blocks until the terminal outcome. On any terminal error the
// collected items are discarded and the error is returned. Like Drain, it
// starts src after registration when src implements Starter.
func Collect[T any](ctx context.Context, src Source[T], opts ...Option) ([]T, error) {
	outcome := make(chan error, 1)
	tracked, err := Track(src, func(err error) { outcome <- err }, opts...)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		items []T
	)
	tracked.OnItem(func(item T, done func(error)) {
		mu.Lock()
		items = append(items, item)
		mu.Unlock()
		done(nil)
	})
	tracked.OnEnd(func(done func()) {
		done()
	})
	tracked.OnError(func(err error, done func(error)) {
		done(err)
	})

	if s, ok := any(src).(Starter); ok {
		s.Start(ctx)
	}

	select {
	case err := <-outcome:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	mu.Lock()
	defer mu.Unlock()
	return items, nil
}
