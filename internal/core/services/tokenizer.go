package services

import "strings"

// MinTokenLength is the minimum length of a content token.
const MinTokenLength = 3

// stopWords are filtered out of every token stream: articles, pronouns,
// auxiliary verbs and common fillers. The same set is used throughout
// the pipeline so question and snippet tokens stay comparable.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "are": {}, "was": {}, "were": {}, "been": {},
	"being": {}, "for": {}, "with": {}, "about": {}, "what": {},
	"which": {}, "who": {}, "whom": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "its": {}, "they": {}, "them": {},
	"their": {}, "you": {}, "your": {}, "his": {}, "her": {}, "our": {},
	"does": {}, "did": {}, "have": {}, "has": {}, "had": {}, "will": {},
	"would": {}, "can": {}, "could": {}, "should": {}, "shall": {},
	"may": {}, "might": {}, "must": {}, "not": {}, "how": {}, "why": {},
	"when": {}, "where": {}, "from": {}, "into": {}, "over": {},
	"under": {}, "again": {}, "there": {}, "here": {}, "all": {},
	"any": {}, "some": {}, "such": {}, "than": {}, "then": {},
	"too": {}, "very": {}, "just": {}, "also": {}, "but": {},
}

// Tokenize normalizes text into an ordered list of distinct lowercase
// content tokens. Characters outside [a-z0-9] split tokens; tokens
// shorter than MinTokenLength and stop-words are dropped; duplicates
// keep their first occurrence.
//
// Pure function. An empty or all-noise string yields an empty list.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lowered)

	var tokens []string
	seen := make(map[string]struct{})

	for _, tok := range strings.Fields(mapped) {
		if len(tok) < MinTokenLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	return tokens
}

// tokenSet returns the tokens of text as a set for membership checks.
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
