package progression

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// fakeClock only moves when the test calls advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	ticker *fakeTicker
}

func newFakeClock() *fakeClock { return &fakeClock{now: t0} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticker = &fakeTicker{ch: make(chan time.Time, 1)}
	return c.ticker
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now, tk := c.now, c.ticker
	c.mu.Unlock()
	if tk == nil {
		return
	}
	select {
	case tk.ch <- now:
	default:
	}
}

func TestStream_RunsToCompletion(t *testing.T) {
	clock := newFakeClock()
	completed := 0
	a := NewAnimator(req(1, 90, 100, 250), OnComplete(func(Snapshot) { completed++ }))

	var frames []Snapshot
	for s := range Stream(context.Background(), a, 50*time.Millisecond, WithClock(clock)) {
		frames = append(frames, s)
		clock.advance(50 * time.Millisecond)
	}

	require.NotEmpty(t, frames)
	assert.Equal(t, Snapshot{Level: 1, XP: 90, RequiredXP: 100, Percent: 90}, frames[0])
	assert.Equal(t, a.Final(), frames[len(frames)-1])
	assert.Equal(t, 1, completed)
	assert.True(t, clock.ticker.isStopped())

	leveled := 0
	for i, f := range frames {
		assert.GreaterOrEqual(t, f.Percent, 0)
		assert.LessOrEqual(t, f.Percent, 100)
		if f.JustLeveled && (i == 0 || !frames[i-1].JustLeveled || frames[i-1].Level != f.Level) {
			leveled++
		}
	}
	assert.Equal(t, 3, leveled)
}

func TestStream_CancelStopsEmission(t *testing.T) {
	clock := newFakeClock()
	completed := false
	a := NewAnimator(req(1, 0, 100, 500), OnComplete(func(Snapshot) { completed = true }))

	ctx, cancel := context.WithCancel(context.Background())
	ch := Stream(ctx, a, 50*time.Millisecond, WithClock(clock))

	for i := 0; i < 3; i++ {
		_, ok := <-ch
		require.True(t, ok)
		if i < 2 {
			clock.advance(50 * time.Millisecond)
		}
	}

	cancel()

	extra := 0
	for range ch {
		extra++
	}
	assert.Zero(t, extra)
	assert.False(t, completed)
	assert.True(t, a.Cancelled())
}

func TestStream_AlreadyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnimator(req(1, 0, 100, 50))
	n := 0
	for range Stream(ctx, a, time.Millisecond, WithClock(newFakeClock())) {
		n++
	}
	assert.Zero(t, n)
	assert.True(t, a.Cancelled())
}

func TestStream_SystemClock(t *testing.T) {
	a := NewAnimator(req(1, 0, 100, 10), WithTiming(Timing{
		PerXP:       time.Millisecond,
		MinLeg:      5 * time.Millisecond,
		MaxLeg:      10 * time.Millisecond,
		LevelUpHold: 5 * time.Millisecond,
	}))

	var last Snapshot
	for s := range Stream(context.Background(), a, time.Millisecond) {
		last = s
	}
	assert.Equal(t, a.Final(), last)
}
