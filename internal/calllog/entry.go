// Package calllog provides the per-segment debug log for extraction runs.
// Every segment attempt is recorded with its raw response; entries form an
// append-only ordered sequence, one per segment (not per retry).
package calllog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/dramatis/internal/types"
)

// Entry represents one recorded segment attempt.
type Entry struct {
	// Unique identifier
	ID string `json:"id" yaml:"id"`

	// Timing
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	LatencyMs int       `json:"latency_ms,omitempty" yaml:"latency_ms,omitempty"`

	// Segment position, 0-based and contiguous
	SegmentIndex int `json:"segment_index" yaml:"segment_index"`

	// Raw provider response; empty on failure
	RawResponse string `json:"raw_response,omitempty" yaml:"raw_response,omitempty"`

	// Parsed entities; nil when the segment failed or decoding failed
	Parsed *types.ExtractionPayload `json:"parsed_entities,omitempty" yaml:"parsed_entities,omitempty"`

	// PromptUsed is recorded only for the first segment.
	PromptUsed string `json:"prompt_used,omitempty" yaml:"prompt_used,omitempty"`

	// Error is present only on failure.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewEntry creates an entry for a segment with a fresh id and timestamp.
func NewEntry(segmentIndex int) Entry {
	return Entry{
		ID:           uuid.New().String(),
		Timestamp:    time.Now(),
		SegmentIndex: segmentIndex,
	}
}
