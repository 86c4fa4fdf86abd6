package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockClient is an LLMClient for testing.
type MockClient struct {
	// Configurable behavior
	Latency        time.Duration
	ResponseText   string
	ResponseJSON   json.RawMessage
	FailWith       error // Returned on every request when set
	RateLimitFirst int   // Fail the first N requests with a rate-limit error

	// State
	requestCount atomic.Int64
}

// NewMockClient creates a new mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		ResponseText: "mock response",
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Requests returns how many calls have been issued.
func (c *MockClient) Requests() int {
	return int(c.requestCount.Load())
}

// Chat sends a mock chat request.
func (c *MockClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	if c.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, &CallError{Kind: KindCancelled, Message: ctx.Err().Error()}
		case <-time.After(c.Latency):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, &CallError{Kind: KindCancelled, Message: err.Error()}
	}

	if c.FailWith != nil {
		return nil, c.FailWith
	}
	if int(count) <= c.RateLimitFirst {
		return nil, &CallError{Kind: KindRateLimit, StatusCode: 429, Message: "mock rate limit"}
	}

	result := &ChatResult{
		RequestID:     fmt.Sprintf("mock-%d", count),
		Provider:      MockClientName,
		ModelUsed:     req.Model,
		ExecutionTime: time.Since(start),
	}
	if len(c.ResponseJSON) > 0 {
		result.Content = string(c.ResponseJSON)
		result.ParsedJSON = c.ResponseJSON
	} else {
		result.Content = c.ResponseText
	}
	return result, nil
}

var _ LLMClient = (*MockClient)(nil)
