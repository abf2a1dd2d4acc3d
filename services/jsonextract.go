package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoFence = errors.New("no code fence")

type jsonStrategy struct {
	name    string
	extract func(text string) (string, error)
}

// Models often wrap JSON in Markdown code fences. Strategies are tried in
// order; the first whose output decodes wins.
var jsonStrategies = []jsonStrategy{
	{"fenced-json", func(text string) (string, error) { return fenced(text, "```json") }},
	{"fenced", func(text string) (string, error) { return fenced(text, "```") }},
	{"raw", func(text string) (string, error) { return strings.TrimSpace(text), nil }},
}

// fenced returns what lies between the first opener and the last closing fence.
func fenced(text, opener string) (string, error) {
	start := strings.Index(text, opener)
	if start < 0 {
		return "", errNoFence
	}
	start += len(opener)
	end := strings.LastIndex(text, "```")
	if end < start {
		return "", fmt.Errorf("unterminated %s fence", opener)
	}
	return strings.TrimSpace(text[start:end]), nil
}

// ExtractJSON decodes the JSON payload of a model reply into v.
func ExtractJSON(text string, v any) error {
	var errs []error
	for _, s := range jsonStrategies {
		candidate, err := s.extract(text)
		if err != nil {
			if !errors.Is(err, errNoFence) {
				errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			}
			continue
		}
		if err := json.Unmarshal([]byte(candidate), v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		return nil
	}
	return fmt.Errorf("no JSON found in model reply: %w", errors.Join(errs...))
}
