package ai

import (
	"encoding/json"
	"strings"

	"github.com/fread-app/fread-server-go/pkg/errors"
)

// ParseJSONObject strips surrounding whitespace and decodes raw model output
// as a single JSON object. Malformed JSON comes back as a typed ParseError
// carrying the offending text; callers must branch on it explicitly.
func ParseJSONObject(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil, errors.NewParseError(trimmed, err)
	}

	return payload, nil
}
