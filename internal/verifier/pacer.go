package verifier

import (
	"context"
	"time"
)

// Pacer enforces a minimum spacing between consecutive oracle calls. It is
// a fixed delay, not a token bucket, and applies uniformly regardless of
// how the previous call ended. Not safe for concurrent use; each run owns
// its own verifier loop.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer builds a pacer with the given minimum spacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until the minimum spacing since the previous call has
// elapsed, or the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return ctx.Err()
	}

	if !p.last.IsZero() {
		remaining := p.interval - time.Since(p.last)
		if remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	p.last = time.Now()
	return nil
}

// Mark records the moment an oracle call finished so the next Wait spaces
// from the end of the call, not from before it started.
func (p *Pacer) Mark() {
	if p != nil {
		p.last = time.Now()
	}
}
