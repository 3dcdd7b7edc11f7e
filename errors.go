package drain

import "errors"

const Namespace = "drain"

var (
	ErrNilSource     = errors.New(Namespace + ": source must not be nil")
	ErrNilCallback   = errors.New(Namespace + ": completion callback must not be nil")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// Source contract violations. These are never returned by the package;
	// they are delivered to the hook configured via WithViolationHook.
	ErrItemAfterEnd  = errors.New(Namespace + ": item emitted after end signal")
	ErrEndAfterEnd   = errors.New(Namespace + ": end signaled more than once")
	ErrItemDoneTwice = errors.New(Namespace + ": per-item completion invoked more than once")
	ErrEndDoneTwice  = errors.New(Namespace + ": end completion invoked more than once")
)
