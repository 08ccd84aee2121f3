package progression

import (
	"context"
	"time"
)

// Ticker delivers frame times.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the time source for Stream.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }

// DefaultFrameInterval is roughly one display frame.
const DefaultFrameInterval = 16 * time.Millisecond

type streamConfig struct {
	clock Clock
}

// StreamOption configures Stream.
type StreamOption func(*streamConfig)

// WithClock sets the time source used by Stream.
func WithClock(c Clock) StreamOption {
	return func(sc *streamConfig) {
		if c != nil {
			sc.clock = c
		}
	}
}

// Stream drives a on its own goroutine, one frame per interval, and
// delivers every frame on the returned channel. The first frame is sent
// immediately. The channel is closed after the final frame, or when ctx
// is cancelled, in which case the animator is cancelled and nothing
// further is sent.
//
// The caller must keep receiving until the channel closes or cancel ctx.
func Stream(ctx context.Context, a *Animator, interval time.Duration, opts ...StreamOption) <-chan Snapshot {
	sc := streamConfig{clock: SystemClock()}
	for _, opt := range opts {
		opt(&sc)
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	out := make(chan Snapshot)
	go func() {
		defer close(out)

		ticker := sc.clock.NewTicker(interval)
		defer ticker.Stop()

		now := sc.clock.Now()
		for {
			if ctx.Err() != nil {
				a.Cancel()
				return
			}
			snap, ok := a.Tick(now)
			if !ok {
				return
			}
			select {
			case out <- snap:
			case <-ctx.Done():
				a.Cancel()
				return
			}
			if a.Done() {
				return
			}
			select {
			case now = <-ticker.C():
			case <-ctx.Done():
				a.Cancel()
				return
			}
		}
	}()
	return out
}
