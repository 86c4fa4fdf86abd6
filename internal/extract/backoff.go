package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/jackzampolin/dramatis/internal/providers"
)

// Backoff retries an operation on classified rate-limit failures only.
// Retry i (0-indexed) waits BaseDelay*2^i plus uniform jitter in
// [0, MaxJitter). Any other failure propagates immediately.
type Backoff struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries uint
	BaseDelay  time.Duration
	MaxJitter  time.Duration
}

// Execute runs op under the backoff policy. Cancellation is checked before
// each retry sleep; a cancelled wait does not issue the next call. When the
// operation is still rate-limited after the final attempt, the returned
// error wraps ErrRetryExhausted instead of the underlying rate-limit error.
func (b Backoff) Execute(ctx context.Context, op func() error) error {
	baseDelay := b.BaseDelay
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	maxJitter := b.MaxJitter
	if maxJitter <= 0 {
		maxJitter = 500 * time.Millisecond
	}

	err := retry.Do(
		op,
		retry.Context(ctx),
		retry.Attempts(b.MaxRetries+1),
		retry.Delay(baseDelay),
		retry.MaxJitter(maxJitter),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.RetryIf(providers.IsRateLimit),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if providers.IsRateLimit(err) {
		return fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, b.MaxRetries+1, err)
	}
	return err
}
