// Package api renders command results to the terminal as YAML or JSON.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding for command output.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// current is set once by the root command's --output flag.
var current = FormatYAML

// SetOutputFormat selects the process-wide output format. Unrecognized
// values fall back to YAML.
func SetOutputFormat(format string) {
	if Format(format) == FormatJSON {
		current = FormatJSON
	} else {
		current = FormatYAML
	}
}

// Output writes data to stdout in the configured format.
func Output(data any) error {
	return OutputTo(os.Stdout, current, data)
}

// OutputTo encodes data to w in the given format.
func OutputTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
