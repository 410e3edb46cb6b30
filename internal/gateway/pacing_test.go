package gateway

import (
	"context"
	"testing"
	"time"
)

func TestPacerReservesSpacedSlots(t *testing.T) {
	current := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	p := newPacer(time.Second, func() time.Time { return current })

	var slept []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	// First call goes immediately; the next two queue a second apart
	// because the clock never advances.
	for i := 0; i < 3; i++ {
		if err := p.wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}

	want := []time.Duration{0, time.Second, 2 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("sleeps = %v", slept)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep %d = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestPacerNoDelayAfterQuietPeriod(t *testing.T) {
	current := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	p := newPacer(time.Second, func() time.Time { return current })
	var slept []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	if err := p.wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	current = current.Add(5 * time.Second)
	if err := p.wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}

	if slept[1] != 0 {
		t.Errorf("second sleep = %v, want 0 after quiet period", slept[1])
	}
}

func TestSleepContextHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Minute); err == nil {
		t.Error("expected context error from cancelled sleep")
	}
	if err := sleepContext(ctx, 0); err != nil {
		t.Errorf("zero-duration sleep should not consult the context: %v", err)
	}
}
