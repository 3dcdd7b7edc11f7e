package drain

import (
	"context"
	"sync"
)

// ChannelSource adapts a receive-only channel to the push Source contract.
// Each received element becomes an item event, channel close becomes the end
// event, and context cancellation becomes a source error carrying ctx.Err().
type ChannelSource[T any] struct {
	*Emitter[T]

	in   <-chan T
	once sync.Once
}

// NewChannelSource constructs a ChannelSource reading from in.
// The caller owns the channel and signals end-of-data by closing it.
func NewChannelSource[T any](in <-chan T) *ChannelSource[T] {
	return &ChannelSource[T]{Emitter: NewEmitter[T](), in: in}
}

// Start launches the pump goroutine. Register listeners before calling
// Start; events emitted before registration are lost. Start is idempotent;
// calls after the first are no-ops.
func (s *ChannelSource[T]) Start(ctx context.Context) {
	s.once.Do(func() {
		go s.pump(ctx)
	})
}

func (s *ChannelSource[T]) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.Fail(ctx.Err())
			return
		case v, ok := <-s.in:
			if !ok {
				s.End()
				return
			}
			s.Emit(v)
		}
	}
}
