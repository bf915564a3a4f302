package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty string",
			text: "",
			want: nil,
		},
		{
			name: "lowercases and splits on punctuation",
			text: "Paris, the capital-city of France!",
			want: []string{"paris", "capital", "city", "france"},
		},
		{
			name: "drops short tokens",
			text: "go is ok but golang rocks",
			want: []string{"golang", "rocks"},
		},
		{
			name: "drops stop words",
			text: "what is the capital",
			want: []string{"capital"},
		},
		{
			name: "deduplicates preserving first occurrence",
			text: "tokens tokens more tokens please",
			want: []string{"tokens", "more", "please"},
		},
		{
			name: "keeps digits",
			text: "error 404 on page 404",
			want: []string{"error", "404", "page"},
		},
		{
			name: "all noise",
			text: "a an & the !!",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"

	first := Tokenize(text)
	second := Tokenize(strings.Join(first, " "))

	assert.Equal(t, first, second)
}

func TestTokenize_NoShortOrStopTokensEver(t *testing.T) {
	for _, tok := range Tokenize("it is what it is: an answer to the why and how of go") {
		assert.GreaterOrEqual(t, len(tok), MinTokenLength)
		_, stop := stopWords[tok]
		assert.False(t, stop, "stop word leaked: %q", tok)
	}
}
