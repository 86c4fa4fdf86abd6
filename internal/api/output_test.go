package api

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputTo(t *testing.T) {
	data := map[string]any{"name": "dramatis", "tags": []string{"fiction"}}

	t.Run("json is indented", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, FormatJSON, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "  \"name\": \"dramatis\"") {
			t.Errorf("json output not indented:\n%s", buf.String())
		}
	})

	t.Run("yaml uses two-space indent", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, FormatYAML, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "tags:\n  - fiction") {
			t.Errorf("yaml output not two-space indented:\n%s", buf.String())
		}
	})

	t.Run("unknown format errors", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, Format("csv"), data); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("json")
	if current != FormatJSON {
		t.Errorf("format = %q after selecting json", current)
	}
	SetOutputFormat("table")
	if current != FormatYAML {
		t.Errorf("format = %q, want yaml fallback for unrecognized value", current)
	}
}
