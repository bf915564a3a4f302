package domain

// Snippet is an addressable unit of source text.
// Snippets are rebuilt on every extraction; ids are stable only
// within a single context and are never reused inside it.
type Snippet struct {
	// ID is the snippet identifier, unique within one context.
	// Web chunks use "w-<n>", transcript chunks use "t-<n>".
	ID string `json:"id"`

	// Text is the whitespace-collapsed snippet text, truncated to the
	// maximum display length with a trailing ellipsis when cut.
	Text string `json:"text"`

	// TimestampSec is the offset into the video in seconds.
	// Nil for web-derived snippets.
	TimestampSec *float64 `json:"timestampSec,omitempty"`

	// TimestampLabel is the human-readable form of TimestampSec
	// ("M:SS" or "H:MM:SS"). Empty when TimestampSec is nil.
	TimestampLabel string `json:"timestampLabel,omitempty"`
}

// HasTimestamp reports whether the snippet is anchored to a video moment.
func (s Snippet) HasTimestamp() bool {
	return s.TimestampSec != nil
}

// ScoredSnippet is a snippet ranked against one question.
// Score measures lexical relevance to that question and is not
// meaningful outside of it.
type ScoredSnippet struct {
	Snippet

	// Score is the relevance score in [0, 1].
	Score float64 `json:"score"`
}

// Citation converts a ranked snippet into a citation carrying the
// same score as its confidence.
func (s ScoredSnippet) Citation() Citation {
	return Citation{
		ID:             s.ID,
		Text:           s.Text,
		Score:          s.Score,
		TimestampSec:   s.TimestampSec,
		TimestampLabel: s.TimestampLabel,
	}
}

// TranscriptSegment is one timed cue from a transcript-extraction
// collaborator.
type TranscriptSegment struct {
	// ID is the segment identifier assigned by the extractor.
	ID string `json:"id"`

	// StartSec is the cue start time in seconds.
	StartSec float64 `json:"startSec"`

	// StartLabel is the human-readable start time.
	StartLabel string `json:"startLabel"`

	// Text is the cue text.
	Text string `json:"text"`
}
