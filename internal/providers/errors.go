package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorKind classifies a failed extraction call.
type ErrorKind string

const (
	// KindRateLimit indicates the provider rejected the call for exceeding
	// an allowed call frequency. Retryable.
	KindRateLimit ErrorKind = "rate_limit"
	// KindCancelled indicates the call was aborted by the caller's context.
	KindCancelled ErrorKind = "cancelled"
	// KindAuth indicates a credential problem. Not retryable.
	KindAuth ErrorKind = "auth"
	// KindBadResponse indicates the provider returned a malformed body.
	KindBadResponse ErrorKind = "bad_response"
	// KindTransport covers network failures and unexpected status codes.
	KindTransport ErrorKind = "transport"
)

// CallError is a classified failure from an extraction provider.
type CallError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// RetryAfter is the provider-suggested wait, when present.
	RetryAfter time.Duration
}

func (e *CallError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// quotaSignatures are message fragments that identify quota exhaustion even
// when the provider does not use a 429 status.
var quotaSignatures = []string{
	"rate limit",
	"rate-limited",
	"quota exceeded",
	"quota exhausted",
	"resource_exhausted",
	"too many requests",
}

// Classify maps an HTTP status code and response body to a CallError.
func Classify(statusCode int, message string) *CallError {
	kind := KindTransport
	switch {
	case statusCode == http.StatusTooManyRequests:
		kind = KindRateLimit
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		kind = KindAuth
	case hasQuotaSignature(message):
		kind = KindRateLimit
	}
	return &CallError{Kind: kind, StatusCode: statusCode, Message: message}
}

func hasQuotaSignature(message string) bool {
	lower := strings.ToLower(message)
	for _, sig := range quotaSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

// IsRateLimit reports whether err is a classified rate-limit failure.
func IsRateLimit(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Kind == KindRateLimit
}

// IsCancelled reports whether err represents caller-requested cancellation.
func IsCancelled(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ce *CallError
	return errors.As(err, &ce) && ce.Kind == KindCancelled
}
