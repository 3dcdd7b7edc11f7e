package drain

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/drain/metrics"
)

// config holds Track configuration.
type config struct {
	// Metrics constructs the instruments Track records into.
	// Default: metrics.NoopProvider (no recording).
	Metrics metrics.Provider

	// ViolationHook receives source contract violations (ErrItemAfterEnd,
	// ErrEndAfterEnd, ErrItemDoneTwice, ErrEndDoneTwice). The offending event
	// is absorbed either way; the hook only makes it observable.
	// Default: nil (violations are absorbed silently).
	ViolationHook func(error)
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Metrics:       metrics.NewNoopProvider(),
		ViolationHook: nil,
	}
}

// validateConfig performs lightweight invariants checks after option application.
func validateConfig(cfg *config) error {
	if cfg.Metrics == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "metrics provider must not be nil"))
	}
	return nil
}

// Option configures Track. Options returning an error abort construction.
type Option func(*config) error

// WithMetrics records coordination metrics (items started/completed, pending
// gauge, per-item and total drain durations, terminal outcomes) into
// instruments built by p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithViolationHook invokes hook for every guarded source contract violation.
// The hook may be called from any goroutine a handler completes on.
func WithViolationHook(hook func(error)) Option {
	return func(cfg *config) error {
		if hook == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithViolationHook requires a non-nil hook"))
		}
		cfg.ViolationHook = hook
		return nil
	}
}
