package gateway

import (
	"context"
	"sync"
	"time"
)

// pacer enforces the minimum spacing between outbound provider
// requests. The single lastRequest scalar is shared across every
// operation and both providers.
type pacer struct {
	mu          sync.Mutex
	minInterval time.Duration
	now         func() time.Time
	sleep       func(context.Context, time.Duration) error

	lastRequest time.Time
}

func newPacer(minInterval time.Duration, now func() time.Time) *pacer {
	if now == nil {
		now = time.Now
	}
	return &pacer{
		minInterval: minInterval,
		now:         now,
		sleep:       sleepContext,
	}
}

// wait blocks until the pacing invariant allows another request start.
// Each caller reserves its start slot under the lock, so consecutive
// reservations are always at least minInterval apart even when callers
// race.
func (p *pacer) wait(ctx context.Context) error {
	p.mu.Lock()
	now := p.now()
	next := p.lastRequest.Add(p.minInterval)
	if next.Before(now) {
		next = now
	}
	p.lastRequest = next
	delay := next.Sub(now)
	p.mu.Unlock()

	return p.sleep(ctx, delay)
}

// sleepContext blocks for the given duration, returning early if the
// context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
