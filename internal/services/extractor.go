package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSONFound means the completion reply contained no brace-delimited span.
	ErrNoJSONFound = errors.New("no JSON object found in completion reply")
	// ErrMalformedJSON means a span was found but did not parse as JSON.
	ErrMalformedJSON = errors.New("completion reply contained malformed JSON")
)

// ExtractJSONObject pulls the first top-level JSON object out of free text.
// LLM replies often wrap the object in markdown fences or surrounding
// prose, so fences are stripped and the span from the first "{" to the
// last "}" is taken greedily. The returned bytes are the extracted span
// itself, unmodified, so the caller can forward it as-is.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONFound
	}

	span := cleaned[start : end+1]
	if !json.Valid([]byte(span)) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, truncateForLog(span, 200))
	}

	return json.RawMessage(span), nil
}

func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
