// Package prompts provides prompt management with embedded defaults.
// Embedded .tmpl files in code are the source of truth; a project document
// may carry an override for the system prompt text.
package prompts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Prompt keys.
const (
	// ExtractSystemKey is the system prompt for entity extraction.
	ExtractSystemKey = "extract.system"
	// ExtractUserKey is the per-segment user message template.
	ExtractUserKey = "extract.user"
)

var keyToFile = map[string]string{
	ExtractSystemKey: "templates/extract_system.tmpl",
	ExtractUserKey:   "templates/extract_user.tmpl",
}

// Default returns the embedded default text for a prompt key.
func Default(key string) (string, error) {
	file, ok := keyToFile[key]
	if !ok {
		return "", fmt.Errorf("unknown prompt key: %s", key)
	}
	data, err := templatesFS.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded prompt %s: %w", key, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Keys returns all known prompt keys.
func Keys() []string {
	keys := make([]string, 0, len(keyToFile))
	for k := range keyToFile {
		keys = append(keys, k)
	}
	return keys
}
