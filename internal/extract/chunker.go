// Package extract implements the incremental entity-extraction pipeline:
// chunking, per-segment extraction calls with retry/backoff and pacing,
// deterministic merging, and cooperative cancellation.
package extract

// Chunk splits text into ordered, contiguous, non-overlapping segments of at
// most maxChars characters (runes, so a multi-byte character is never split).
// Concatenating the result in order reproduces the input exactly. Empty input
// yields no chunks.
func Chunk(text string, maxChars int) []string {
	if text == "" {
		return nil
	}
	if maxChars < 1 {
		maxChars = 1
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+maxChars-1)/maxChars)
	for start := 0; start < len(runes); start += maxChars {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
