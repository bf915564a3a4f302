package driven

import "context"

// LLMService provides language model operations for grounded answering.
// This is an optional service - when nil, the ask pipeline is disabled
// while snippet building and ranking keep working.
//
// Implementations may include:
//   - OpenAI (GPT-4, GPT-3.5)
//   - Ollama (local models)
//   - Any OpenAI-compatible inference server
//
// The service owns its own timeout policy. It must not retry on behalf
// of the caller; a failed call surfaces as an error and the caller's
// reconciliation fallbacks absorb malformed reply content.
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to grounded mode.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
