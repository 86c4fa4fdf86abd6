package extract

import "errors"

var (
	// ErrRetryExhausted is returned when a segment call stayed rate-limited
	// through the whole retry budget. The run logs the segment and continues.
	ErrRetryExhausted = errors.New("retry budget exhausted")

	// ErrSchemaParse is returned when a response body does not satisfy the
	// extraction payload schema. Not retryable; the segment is skipped.
	ErrSchemaParse = errors.New("response schema violation")

	// ErrConfiguration is returned before any segment processing begins when
	// the pipeline is not runnable (missing client, credential, or profile).
	ErrConfiguration = errors.New("extraction configuration invalid")
)
