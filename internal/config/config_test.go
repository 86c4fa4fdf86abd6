package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("default profile resolves", func(t *testing.T) {
		p, err := cfg.Profile("")
		if err != nil {
			t.Fatalf("default profile lookup failed: %v", err)
		}
		if p.ID != cfg.Extraction.DefaultProfile {
			t.Errorf("got profile %q, want %q", p.ID, cfg.Extraction.DefaultProfile)
		}
	})

	t.Run("every profile has pacing and chunk limits", func(t *testing.T) {
		for _, p := range cfg.Profiles {
			if p.MaxChunkChars <= 0 {
				t.Errorf("profile %s has no chunk limit", p.ID)
			}
			if p.PacingDelay() <= 0 {
				t.Errorf("profile %s has no pacing delay", p.ID)
			}
			if p.Provider == "" || p.Model == "" {
				t.Errorf("profile %s incomplete: %+v", p.ID, p)
			}
		}
	})

	t.Run("unknown profile errors", func(t *testing.T) {
		if _, err := cfg.Profile("no-such-profile"); err == nil {
			t.Error("expected error for unknown profile")
		}
	})
}

func TestPacingDelay(t *testing.T) {
	cases := map[string]struct {
		rpm  int
		want time.Duration
	}{
		"60 rpm":   {60, time.Second},
		"10 rpm":   {10, 6 * time.Second},
		"zero rpm": {0, 0},
		"negative": {-1, 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := ModelProfile{RequestsPerMinute: tc.rpm}
			if got := p.PacingDelay(); got != tc.want {
				t.Errorf("PacingDelay() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExtractionSettingsDurations(t *testing.T) {
	s := ExtractionSettings{BaseDelayMs: 1000, MaxJitterMs: 500}
	if s.BaseDelay() != time.Second {
		t.Errorf("BaseDelay() = %v", s.BaseDelay())
	}
	if s.MaxJitter() != 500*time.Millisecond {
		t.Errorf("MaxJitter() = %v", s.MaxJitter())
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("expands references", func(t *testing.T) {
		t.Setenv("DRAMATIS_TEST_KEY", "sk-12345")
		if got := ResolveEnvVars("${DRAMATIS_TEST_KEY}"); got != "sk-12345" {
			t.Errorf("got %q", got)
		}
		if got := ResolveEnvVars("prefix-${DRAMATIS_TEST_KEY}-suffix"); got != "prefix-sk-12345-suffix" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unset variable expands empty", func(t *testing.T) {
		if got := ResolveEnvVars("${DRAMATIS_TEST_UNSET_VAR}"); got != "" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("plain strings pass through", func(t *testing.T) {
		for _, s := range []string{"", "literal-key", "$NOT_BRACED"} {
			if got := ResolveEnvVars(s); got != s {
				t.Errorf("ResolveEnvVars(%q) = %q", s, got)
			}
		}
	})
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("TEST_PROVIDER_KEY", "sk-test")
	cfg := &Config{APIKeys: map[string]string{
		"openrouter": "${TEST_PROVIDER_KEY}",
		"literal":    "sk-literal",
	}}
	if got := cfg.ResolveAPIKey("openrouter"); got != "sk-test" {
		t.Errorf("got %q", got)
	}
	if got := cfg.ResolveAPIKey("literal"); got != "sk-literal" {
		t.Errorf("got %q", got)
	}
	if got := cfg.ResolveAPIKey("missing"); got != "" {
		t.Errorf("got %q", got)
	}
}
