package config

// DefaultConfig returns the built-in configuration used when no config
// file is present.
func DefaultConfig() *Config {
	return &Config{
		APIKeys: map[string]string{
			"openrouter": "${OPENROUTER_API_KEY}",
			"openai":     "${OPENAI_API_KEY}",
		},
		Profiles: []ModelProfile{
			{
				ID:                "claude-sonnet",
				Provider:          "openrouter",
				Model:             "anthropic/claude-3.5-sonnet",
				MaxChunkChars:     12000,
				RequestsPerMinute: 50,
			},
			{
				ID:                "gpt-4o-mini",
				Provider:          "openai",
				Model:             "gpt-4o-mini",
				MaxChunkChars:     8000,
				RequestsPerMinute: 60,
			},
			{
				ID:                "gemini-flash",
				Provider:          "openrouter",
				Model:             "google/gemini-2.0-flash-001",
				MaxChunkChars:     16000,
				RequestsPerMinute: 10,
			},
		},
		Extraction: ExtractionSettings{
			MaxRetries:     3,
			BaseDelayMs:    1000,
			MaxJitterMs:    500,
			DefaultProfile: "gemini-flash",
		},
	}
}
