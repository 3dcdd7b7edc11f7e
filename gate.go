package drain

import "sync/atomic"

// gate wraps the terminal callback so that it executes at most once for the
// lifetime of one Tracked instance. Any number of completion paths (per-item
// error, end-of-data drain, source error handler) may race to fire; the first
// call wins and every later call is absorbed without effect.
//
// Completions may arrive from arbitrary goroutines, so the fired flag is a
// compare-and-swap rather than a plain bool.
type gate struct {
	fired atomic.Bool
	fn    func(error)
}

func newGate(fn func(error)) *gate {
	return &gate{fn: fn}
}

// fire invokes the wrapped callback with err on the first call and is a no-op
// afterwards. The callback runs on the caller's goroutine.
func (g *gate) fire(err error) {
	if g.fired.CompareAndSwap(false, true) {
		g.fn(err)
	}
}

// done reports whether the gate has already fired.
func (g *gate) done() bool {
	return g.fired.Load()
}
