package domain

import "time"

// Citation is a snippet attached to a specific answer.
// Citations are created once per answer and are immutable afterwards.
type Citation struct {
	// ID references a snippet from the ranked pool the answer was
	// grounded on.
	ID string `json:"id"`

	// Text is the cited snippet text. Collapsed citations join up to
	// three member texts with " ... ".
	Text string `json:"text"`

	// Score is the confidence that this citation supports the answer,
	// clamped to [0, 1].
	Score float64 `json:"score"`

	// TimestampSec is the video offset in seconds, nil for web citations.
	TimestampSec *float64 `json:"timestampSec,omitempty"`

	// TimestampLabel is the human-readable timestamp. Collapsed
	// citations render as "start-end".
	TimestampLabel string `json:"timestampLabel,omitempty"`
}

// HasTimestamp reports whether the citation points at a video moment.
func (c Citation) HasTimestamp() bool {
	return c.TimestampSec != nil
}

// PlaybackRange is a start/end window used to highlight or seek video
// playback. Ranges are derived on demand from a message's citations and
// are never persisted. EndSec is always strictly greater than StartSec.
type PlaybackRange struct {
	// StartSec is the window start in seconds.
	StartSec float64 `json:"startSec"`

	// EndSec is the window end in seconds.
	EndSec float64 `json:"endSec"`

	// StartLabel is the human-readable start time.
	StartLabel string `json:"startLabel"`

	// EndLabel is the human-readable end time.
	EndLabel string `json:"endLabel"`
}

// Answer is a grounded answer to one question.
type Answer struct {
	// ID is the answer identifier.
	ID string `json:"id"`

	// Question is the question the answer responds to.
	Question string `json:"question"`

	// Text is the model's answer text.
	Text string `json:"text"`

	// Sources is the finalized citation list, at most five entries.
	Sources []Citation `json:"sources"`

	// Model is the name of the language model that produced the answer.
	Model string `json:"model,omitempty"`

	// CreatedAt is when the answer was produced.
	CreatedAt time.Time `json:"createdAt"`
}
