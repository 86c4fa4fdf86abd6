package extract

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum wall-clock spacing between successful extraction
// calls, independent of retry backoff. Reworked from a token-bucket limiter:
// with sequential segments a fixed inter-call interval is the whole contract.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration

	// Statistics
	totalWaited time.Duration
	waits       int64
}

// PacerStats reports accumulated pacing behavior.
type PacerStats struct {
	Interval    time.Duration `json:"interval"`
	TotalWaited time.Duration `json:"total_waited"`
	Waits       int64         `json:"waits"`
}

// NewPacer creates a pacer with the given minimum inter-call interval.
// A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// PacerForRPM creates a pacer that spaces calls to stay at or under the
// given requests-per-minute limit.
func PacerForRPM(requestsPerMinute int) *Pacer {
	if requestsPerMinute <= 0 {
		return NewPacer(0)
	}
	return NewPacer(time.Minute / time.Duration(requestsPerMinute))
}

// Wait sleeps for whatever remains of the interval measured from callStart,
// or returns immediately when the call already took at least the interval.
// The sleep is a cancellation point: a done context aborts the wait.
func (p *Pacer) Wait(ctx context.Context, callStart time.Time) error {
	p.mu.Lock()
	remaining := p.interval - time.Since(callStart)
	p.mu.Unlock()

	if remaining <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(remaining):
	}

	p.mu.Lock()
	p.totalWaited += remaining
	p.waits++
	p.mu.Unlock()
	return nil
}

// Stats returns accumulated pacing statistics.
func (p *Pacer) Stats() PacerStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PacerStats{
		Interval:    p.interval,
		TotalWaited: p.totalWaited,
		Waits:       p.waits,
	}
}
