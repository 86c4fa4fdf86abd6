package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackzampolin/dramatis/internal/calllog"
	"github.com/jackzampolin/dramatis/internal/prompts"
	"github.com/jackzampolin/dramatis/internal/providers"
	"github.com/jackzampolin/dramatis/internal/types"
)

const defaultMaxChunkChars = 8000

// Options configures one extraction run.
type Options struct {
	// Prompt is the system prompt. Empty selects the embedded default.
	Prompt string

	// Model is passed through to the client (client default if empty).
	Model string

	// MaxChunkChars bounds segment size in characters (runes).
	MaxChunkChars int

	// PacingDelay is the minimum spacing between successful calls.
	PacingDelay time.Duration

	// Retry policy for rate-limited calls.
	MaxRetries uint
	BaseDelay  time.Duration
	MaxJitter  time.Duration

	Temperature float64

	// Progress receives synchronous per-segment updates. Optional.
	Progress ProgressFunc

	Logger *slog.Logger
}

// Result carries everything accumulated by a run. Partial results up to the
// last completed segment are always returned; cancellation never discards
// them.
type Result struct {
	Characters []*types.Character `json:"characters" yaml:"characters"`
	Scenes     []*types.Scene     `json:"scenes" yaml:"scenes"`
	DebugLog   []calllog.Entry    `json:"debug_log" yaml:"debug_log"`

	// Segments is the total segment count; Completed is how many were
	// attempted before the run ended.
	Segments  int `json:"segments" yaml:"segments"`
	Completed int `json:"completed" yaml:"completed"`

	// Cancelled is true when the run was stopped cooperatively. Not a
	// failure: callers should present "stopped", not "failed".
	Cancelled bool `json:"cancelled" yaml:"cancelled"`
}

// Run executes the extraction pipeline over fullText: chunk, then for each
// segment summarize known entities, call the client under retry/backoff,
// merge the decoded payload, report progress, and pace the next call.
// Segments are strictly sequential so each call sees the merged output of
// every prior segment. Per-segment failures are logged and skipped; only
// cancellation and configuration errors end the run early.
func Run(ctx context.Context, client providers.LLMClient, fullText string, opts Options) (*Result, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: no extraction client", ErrConfiguration)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	systemPrompt := opts.Prompt
	if systemPrompt == "" {
		def, err := prompts.Default(prompts.ExtractSystemKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		systemPrompt = def
	}

	maxChars := opts.MaxChunkChars
	if maxChars <= 0 {
		maxChars = defaultMaxChunkChars
	}

	chunks := Chunk(fullText, maxChars)
	acc := NewAccumulator()
	log := calllog.NewLog()
	pacer := NewPacer(opts.PacingDelay)
	backoff := Backoff{MaxRetries: opts.MaxRetries, BaseDelay: opts.BaseDelay, MaxJitter: opts.MaxJitter}

	result := func(completed int, cancelled bool) *Result {
		return &Result{
			Characters: acc.Characters(),
			Scenes:     acc.Scenes(),
			DebugLog:   log.Entries(),
			Segments:   len(chunks),
			Completed:  completed,
			Cancelled:  cancelled,
		}
	}

	logger.Info("starting extraction run",
		"segments", len(chunks),
		"max_chunk_chars", maxChars,
		"pacing_delay", opts.PacingDelay)

	for i, segment := range chunks {
		// Cancellation check before issuing any call for this segment.
		if ctx.Err() != nil {
			logger.Info("extraction cancelled", "completed_segments", i)
			return result(i, true), nil
		}

		reportProgress(opts.Progress, i, len(chunks))

		userMsg, err := prompts.RenderSegment(prompts.SegmentData{
			ContextSummary: Summarize(acc),
			SegmentText:    segment,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}

		req := &providers.ChatRequest{
			Messages: []providers.Message{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userMsg},
			},
			Model:       opts.Model,
			Temperature: opts.Temperature,
			ResponseFormat: &providers.ResponseFormat{
				Type:       "json_schema",
				Name:       "extraction",
				JSONSchema: ResponseSchema(),
			},
		}

		callStart := time.Now()
		var chatResult *providers.ChatResult
		callErr := backoff.Execute(ctx, func() error {
			r, err := client.Chat(ctx, req)
			if err != nil {
				return err
			}
			chatResult = r
			return nil
		})

		entry := calllog.NewEntry(i)
		if i == 0 {
			entry.PromptUsed = systemPrompt
		}

		// A result arriving after cancellation was observed is discarded,
		// not merged. The attempt still gets its log entry.
		if ctx.Err() != nil {
			if callErr != nil {
				entry.Error = callErr.Error()
			} else {
				entry.Error = fmt.Sprintf("cancelled during call, result discarded: %v", ctx.Err())
			}
			log.Append(entry)
			logger.Info("extraction cancelled", "completed_segments", i)
			return result(i, true), nil
		}

		if callErr != nil {
			entry.Error = callErr.Error()
			log.Append(entry)
			if errors.Is(callErr, ErrRetryExhausted) {
				logger.Warn("segment skipped: retry budget exhausted", "segment", i)
			} else {
				logger.Warn("segment failed", "segment", i, "error", callErr)
			}
			continue
		}

		entry.RawResponse = chatResult.Content
		entry.LatencyMs = int(chatResult.ExecutionTime.Milliseconds())

		raw := chatResult.ParsedJSON
		if len(raw) == 0 {
			raw = []byte(chatResult.Content)
		}
		payload, decErr := DecodePayload(raw)
		if decErr != nil {
			entry.Error = decErr.Error()
			log.Append(entry)
			logger.Warn("segment skipped: undecodable response", "segment", i, "error", decErr)
			continue
		}

		entry.Parsed = payload
		log.Append(entry)

		for _, c := range payload.Characters {
			acc.MergeCharacter(c)
		}
		for _, s := range payload.Scenes {
			acc.MergeScene(s)
		}

		nChars, nScenes := acc.Len()
		logger.Debug("segment merged",
			"segment", i,
			"characters", nChars,
			"scenes", nScenes)

		// Pacing sleep is itself a cancellation point.
		if err := pacer.Wait(ctx, callStart); err != nil {
			logger.Info("extraction cancelled", "completed_segments", i+1)
			return result(i+1, true), nil
		}
	}

	reportDone(opts.Progress, len(chunks))
	logger.Info("extraction run complete",
		"segments", len(chunks),
		"pacer_waits", pacer.Stats().Waits)

	return result(len(chunks), false), nil
}
