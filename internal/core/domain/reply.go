package domain

// ModelClaim is one citation claimed by the language model. Claims are
// untrusted: the id may be hallucinated, the score out of range or
// missing, and the same id may appear more than once. The reconciler
// validates every claim against the ranked pool.
type ModelClaim struct {
	// ID is the snippet id the model claims to cite.
	ID string `json:"id"`

	// Quote is the text the model says it quoted. Informational only;
	// the pool snippet's text is authoritative.
	Quote string `json:"quote,omitempty"`

	// Score is the model's confidence. Nil when the model omitted it.
	Score *float64 `json:"score,omitempty"`
}

// ModelReply is the parsed shape of the language model's response to a
// grounded prompt.
type ModelReply struct {
	// Answer is the model's answer text.
	Answer string `json:"answer"`

	// Sources is the model's claimed citation list.
	Sources []ModelClaim `json:"sources"`
}
