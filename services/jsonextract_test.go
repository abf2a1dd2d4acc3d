package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"json fence", "Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy!"},
		{"generic fence", "```\n{\"a\": 1}\n```"},
		{"raw", "  {\"a\": 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				A int `json:"a"`
			}
			require.NoError(t, ExtractJSON(tt.text, &got))
			assert.Equal(t, 1, got.A)
		})
	}
}

func TestExtractJSONFailures(t *testing.T) {
	var v map[string]any

	assert.Error(t, ExtractJSON("sorry, I can't help with that", &v))
	assert.Error(t, ExtractJSON("```json\n{broken\n```", &v))
	assert.Error(t, ExtractJSON("```json {\"a\": 1}", &v), "unterminated fence")
}

func TestFenced(t *testing.T) {
	got, err := fenced("x ```json\n[1]\n``` y", "```json")
	require.NoError(t, err)
	assert.Equal(t, "[1]", got)

	_, err = fenced("no fence", "```")
	assert.ErrorIs(t, err, errNoFence)
}
