// Package drain coordinates the completion of asynchronous per-item
// processing over a push-based source.
//
// A Source emits discrete items, then exactly one of an end-of-data signal
// or an error signal. Processing an item is itself asynchronous: the handler
// receives a completion callback and invokes it when it is finished. Track
// wraps a source's listener-registration surface so that a single terminal
// callback fires exactly once — with the first error observed on any path,
// or with nil once the source has signaled end AND every in-flight handler
// (including the end handler) has completed.
//
// Construction
//   - Track(src, onAllDone, opts...): wraps an existing Source and returns
//     the tracked surface for registering completion-aware handlers.
//   - NewEmitter / NewChannelSource: concrete sources for in-process
//     producers and Go channels.
//   - Drain / Collect: blocking conveniences built on Track.
//
// Guarantees
//   - The terminal callback fires at most once, however many completion
//     paths race for it.
//   - An error, whether from a per-item handler or the source, is always the
//     terminal outcome; no success can fire afterwards.
//   - Success fires only after the end signal has been observed, the end
//     handler has completed, and the pending count has reached zero.
//
// Contract requirements on the caller and source
//   - Every done callback must eventually be invoked exactly once; a handler
//     that never completes makes the terminal callback wait forever. No
//     timeouts are imposed here.
//   - The source must not emit items after its end event. Track guards the
//     pending count against that anyway and reports the violation through
//     WithViolationHook.
//   - Track applies no flow control: it never pauses or resumes the source,
//     it only tracks completion.
package drain
