package drain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/drain/metrics"
)

func TestOptions_Defaults(t *testing.T) {
	cfg := defaultConfig()

	require.NotNil(t, cfg.Metrics)
	require.Nil(t, cfg.ViolationHook)
	require.NoError(t, validateConfig(&cfg))
}

func TestOptions_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "nil metrics provider", opt: WithMetrics(nil)},
		{name: "nil violation hook", opt: WithViolationHook(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			err := tt.opt(&cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestOptions_Applied(t *testing.T) {
	p := metrics.NewBasicProvider()
	hook := func(error) {}

	cfg := defaultConfig()
	require.NoError(t, WithMetrics(p)(&cfg))
	require.NoError(t, WithViolationHook(hook)(&cfg))

	require.Equal(t, metrics.Provider(p), cfg.Metrics)
	require.NotNil(t, cfg.ViolationHook)
}

func TestTrack_NilOptionSkipped(t *testing.T) {
	_, err := Track[int](NewEmitter[int](), func(error) {}, nil, WithViolationHook(func(error) {}))
	require.NoError(t, err)
}
