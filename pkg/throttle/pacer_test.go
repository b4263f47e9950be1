package throttle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPacer_Wait(t *testing.T) {
	p := NewPacer(20 * time.Millisecond)

	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Wait() returned after %v, want >= 20ms", elapsed)
	}
}

func TestPacer_ZeroDelayDoesNotPause(t *testing.T) {
	p := NewPacer(0)

	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed > 5*time.Millisecond {
		t.Errorf("Wait() with zero delay took %v, want immediate return", elapsed)
	}
}

func TestPacer_CancelledContext(t *testing.T) {
	p := NewPacer(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestPacer_ZeroDelayReportsCancellation(t *testing.T) {
	p := NewPacer(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestPacer_Delay(t *testing.T) {
	if got := NewPacer(DefaultDelay).Delay(); got != DefaultDelay {
		t.Errorf("Delay() = %v, want %v", got, DefaultDelay)
	}
}
