package drain

import "sync"

// Emitter is a concrete in-process Source. Producers push items with Emit and
// terminate the stream with exactly one of End or Fail. It honors the Source
// ordering contract on behalf of its producers: anything emitted after the
// terminal event is dropped.
//
// Registration and production are safe for concurrent use. Listeners run
// synchronously on the producer's goroutine, in registration order.
type Emitter[T any] struct {
	mu      sync.Mutex
	itemFns []func(T)
	endFns  []func()
	errFns  []func(error)
	closed  bool
}

// NewEmitter constructs an Emitter with no listeners registered.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// OnItem registers fn to be invoked once per emitted item.
func (e *Emitter[T]) OnItem(fn func(item T)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.itemFns = append(e.itemFns, fn)
}

// OnEnd registers fn to be invoked when End is called.
func (e *Emitter[T]) OnEnd(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endFns = append(e.endFns, fn)
}

// OnError registers fn to be invoked when Fail is called.
func (e *Emitter[T]) OnError(fn func(err error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errFns = append(e.errFns, fn)
}

// Emit delivers item to every registered item listener.
// Items emitted after End or Fail are dropped.
func (e *Emitter[T]) Emit(item T) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	fns := append(([]func(T))(nil), e.itemFns...)
	e.mu.Unlock()

	for _, fn := range fns {
		fn(item)
	}
}

// End signals end-of-data to every registered end listener.
// Only the first terminal signal (End or Fail) has effect.
func (e *Emitter[T]) End() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	fns := append(([]func())(nil), e.endFns...)
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Fail signals a source-level error to every registered error listener.
// Only the first terminal signal (End or Fail) has effect.
func (e *Emitter[T]) Fail(err error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	fns := append(([]func(error))(nil), e.errFns...)
	e.mu.Unlock()

	for _, fn := range fns {
		fn(err)
	}
}
