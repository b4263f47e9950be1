// Package throttle provides the fixed inter-chunk pacer that protects the
// upstream API during bulk acquisition.
//
// This is deliberately the only rate protection in the pipeline: a constant
// pause between chunks, with no adaptivity. There is no header inspection,
// no backoff on failure, and no speed-up on sustained success.
package throttle

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for pacing.
var (
	pacerWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_pacer_waits_total",
		Help: "Total number of inter-chunk pacing pauses",
	})

	pacerWaitSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_pacer_wait_seconds_total",
		Help: "Total time spent in inter-chunk pacing pauses",
	})
)

// DefaultDelay is the fixed pause between chunks.
const DefaultDelay = 100 * time.Millisecond

// Pacer pauses for a fixed duration between chunks.
type Pacer struct {
	delay time.Duration
}

// NewPacer creates a pacer. A zero or negative delay disables pausing
// entirely (the sequential variant runs unpaced).
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Delay returns the configured pause.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Wait blocks for the fixed delay or until the context is done. A context
// error is returned unchanged so the caller can treat it as catastrophic.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	pacerWaitsTotal.Inc()
	pacerWaitSeconds.Add(p.delay.Seconds())

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay):
		return nil
	}
}
