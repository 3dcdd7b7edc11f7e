package drain

import (
	"errors"
	"testing"
)

func newStateRecorder() (*state, *int, *error) {
	var (
		calls int
		got   error
	)
	s := newState(newGate(func(err error) {
		calls++
		got = err
	}))
	return s, &calls, &got
}

func TestState_DrainRequiresEndCompletionAndZeroPending(t *testing.T) {
	s, calls, got := newStateRecorder()

	if !s.itemStart() {
		t.Fatalf("itemStart before end should be accepted")
	}
	if !s.itemStart() {
		t.Fatalf("itemStart before end should be accepted")
	}
	if !s.sourceEnd() {
		t.Fatalf("first sourceEnd should latch")
	}

	// Pending still 2: neither end completion nor one item completion fires.
	s.endComplete()
	if *calls != 0 {
		t.Fatalf("fired with pending handlers outstanding")
	}
	s.itemDone(nil)
	if *calls != 0 {
		t.Fatalf("fired with one pending handler outstanding")
	}

	// Last completion observes the drained pipeline.
	s.itemDone(nil)
	if *calls != 1 || *got != nil {
		t.Fatalf("calls=%d got=%v; want exactly one nil firing", *calls, *got)
	}
}

func TestState_EndCompletionGatesSuccess(t *testing.T) {
	s, calls, _ := newStateRecorder()

	s.itemStart()
	s.sourceEnd()
	// Item drains before the end handler completes: must not fire yet.
	s.itemDone(nil)
	if *calls != 0 {
		t.Fatalf("fired before the end handler completed")
	}
	s.endComplete()
	if *calls != 1 {
		t.Fatalf("calls=%d; want 1 after end handler completion", *calls)
	}
}

func TestState_ItemErrorShortCircuits(t *testing.T) {
	s, calls, got := newStateRecorder()
	errItem := errors.New("boom")

	s.itemStart()
	s.itemStart()
	s.itemDone(errItem)

	if *calls != 1 || !errors.Is(*got, errItem) {
		t.Fatalf("calls=%d got=%v; want immediate firing with %v", *calls, *got, errItem)
	}

	// Late completions are absorbed by the gate.
	s.sourceEnd()
	s.endComplete()
	s.itemDone(nil)
	if *calls != 1 {
		t.Fatalf("calls=%d; want 1 after late completions", *calls)
	}
}

func TestState_ItemStartAfterEndRejected(t *testing.T) {
	s, _, _ := newStateRecorder()

	s.sourceEnd()
	if s.itemStart() {
		t.Fatalf("itemStart after sourceEnd should be rejected")
	}
	if s.sourceEnd() {
		t.Fatalf("second sourceEnd should report already latched")
	}
}
