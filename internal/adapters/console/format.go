package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by FormatValue
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatRaw   = "raw"
	FormatTable = "table"
	FormatPanel = "panel"
)

// FormatValue renders a JSON-like value. Raw prints strings verbatim and
// falls back to JSON for everything else.
func FormatValue(v any, format string) (string, error) {
	switch format {
	case FormatJSON, "":
		return marshalJSON(v)
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case FormatRaw:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return marshalJSON(v)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// CheckFormat rejects formats not in allowed
func CheckFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected one of %s)", format, strings.Join(allowed, ", "))
}

func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
