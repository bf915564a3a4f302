package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Malformed data from untrusted collaborators (LLM replies, transcript
// cues) never surfaces as an error; the pipeline degrades to its
// deterministic fallbacks instead. Only programmer-error-class input
// violations fail fast.
var (
	// ErrEmptyQuestion indicates an empty question string reached the
	// ranker. This is a caller validation failure, not a data problem.
	ErrEmptyQuestion = errors.New("empty question")

	// ErrNoContent indicates a context with no extractable text at all.
	ErrNoContent = errors.New("no extractable content")

	// ErrInvalidInput indicates malformed or invalid caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Grounded answering is disabled without it; snippet building and
	// ranking still work.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnsupportedFormat indicates an extractor or transcript parser
	// was handed a format it does not understand.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
