package drain

import "sync"

// state holds the pending counter and the two completion latches. The drain
// decision — end handler completed AND pending == 0 — is re-evaluated at the
// only two mutation points where it can become true: a per-item completion
// and the end handler's own completion.
//
// Handlers may complete on any goroutine, so mutations take the mutex. The
// gate fires outside the lock so the terminal callback is free to re-enter
// the coordinator.
type state struct {
	mu           sync.Mutex
	pending      int
	exhausted    bool
	endCompleted bool

	gate *gate
}

func newState(g *gate) *state {
	return &state{gate: g}
}

// itemStart accounts one in-flight per-item handler. It reports false when
// the source has already signaled end; the caller must drop the item instead
// of corrupting the count.
func (s *state) itemStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exhausted {
		return false
	}
	s.pending++
	return true
}

// itemDone accounts one per-item completion. A non-nil err fires the gate
// immediately, regardless of remaining pending handlers or exhaustion.
// Otherwise the gate fires only if this was the last pending handler and the
// end handler has already completed.
func (s *state) itemDone(err error) {
	s.mu.Lock()
	s.pending--
	drained := s.endCompleted && s.pending == 0
	s.mu.Unlock()

	if err != nil {
		s.gate.fire(err)
		return
	}
	if drained {
		s.gate.fire(nil)
	}
}

// sourceEnd latches exhaustion. It reports false when end was already
// latched, which the caller treats as a source contract violation.
func (s *state) sourceEnd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exhausted {
		return false
	}
	s.exhausted = true
	return true
}

// endComplete records that the caller's end handler finished and fires the
// gate if no per-item handlers remain pending. When some are still pending,
// firing is deferred to whichever of their completions observes a drained
// pipeline.
func (s *state) endComplete() {
	s.mu.Lock()
	s.endCompleted = true
	drained := s.pending == 0
	s.mu.Unlock()

	if drained {
		s.gate.fire(nil)
	}
}
