package services

import (
	"encoding/json"
	"strings"
)

const (
	cardOpen     = "{destination_card}"
	cardClose    = "{/destination_card}"
	buttonsOpen  = "{suggest_buttons}"
	buttonsClose = "{/suggest_buttons}"
)

// ProcessedResponse is model output with its inline markup pulled out.
type ProcessedResponse struct {
	Text              string   `json:"text"`
	DestinationCards  []string `json:"destinationCards"`
	SuggestionButtons []string `json:"suggestionButtons"`
}

// ParseMarkup strips card and button markers from text and collects their contents.
func ParseMarkup(text string) ProcessedResponse {
	return ProcessedResponse{
		Text:              cleanMarkup(text),
		DestinationCards:  extractCards(text),
		SuggestionButtons: extractButtons(text),
	}
}

// blocks returns the contents between each open/close pair, left to right.
// An open marker without a matching close ends the scan.
func blocks(text, open, close string) []string {
	var out []string
	rest := text
	for {
		start := strings.Index(rest, open)
		if start < 0 {
			return out
		}
		rest = rest[start+len(open):]
		end := strings.Index(rest, close)
		if end < 0 {
			return out
		}
		out = append(out, rest[:end])
		rest = rest[end+len(close):]
	}
}

func extractCards(text string) []string {
	cards := []string{}
	for _, b := range blocks(text, cardOpen, cardClose) {
		cards = append(cards, strings.TrimSpace(b))
	}
	return cards
}

// extractButtons keeps the last block that decodes as a JSON array of strings.
func extractButtons(text string) []string {
	buttons := []string{}
	for _, b := range blocks(text, buttonsOpen, buttonsClose) {
		var parsed []string
		if err := json.Unmarshal([]byte(strings.TrimSpace(b)), &parsed); err != nil || parsed == nil {
			continue
		}
		buttons = parsed
	}
	return buttons
}

func cleanMarkup(text string) string {
	clean := strings.ReplaceAll(text, cardOpen, "**")
	clean = strings.ReplaceAll(clean, cardClose, "**")
	clean = strings.ReplaceAll(clean, buttonsOpen, "")
	clean = strings.ReplaceAll(clean, buttonsClose, "")
	return stripInlineArray(clean)
}

// stripInlineArray drops the first bracketed span when it looks like a JSON
// string array left behind by the button block.
func stripInlineArray(text string) string {
	start := strings.Index(text, "[")
	if start < 0 {
		return text
	}
	end := strings.Index(text[start:], "]")
	if end < 0 {
		return text
	}
	span := text[start : start+end+1]
	if strings.Contains(span, `"`) && strings.Contains(span, ",") {
		return strings.ReplaceAll(text, span, "")
	}
	return text
}
