package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driving"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// Ensure the services implement the driving ports.
var (
	_ driving.AskService       = (*AskService)(nil)
	_ driving.GroundingService = (*GroundingService)(nil)
)

// defaultGroundedAnswerPrompt is the fallback prompt when no PromptStore
// is configured. The model must answer from the supplied snippets only
// and cite them by id.
const defaultGroundedAnswerPrompt = `You answer questions about a single page or video using ONLY the snippets below.
Reply with a JSON object: {"answer": string, "sources": [{"id": string, "quote": string, "score": number}]}.
Every source id MUST come from SNIPPETS_JSON. Score is your confidence in [0,1].
If the snippets do not contain the answer, say so in "answer" and cite the closest snippets anyway.

QUESTION: %s

SNIPPETS_JSON: %s`

// GroundingService implements the deterministic pipeline port as plain
// pass-throughs to the package functions, so front ends depend on an
// interface rather than free functions.
type GroundingService struct{}

// NewGroundingService creates a new grounding service.
func NewGroundingService() *GroundingService {
	return &GroundingService{}
}

// BuildSnippets splits raw page text or transcript segments into snippets.
func (g *GroundingService) BuildSnippets(rawText string, segments []domain.TranscriptSegment) ([]domain.Snippet, error) {
	return BuildSnippets(rawText, segments)
}

// RankSnippets orders snippets by relevance to the question.
func (g *GroundingService) RankSnippets(question string, snippets []domain.Snippet) ([]domain.ScoredSnippet, error) {
	return RankSnippets(question, snippets)
}

// ReconcileCitations validates model claims against the ranked pool.
func (g *GroundingService) ReconcileCitations(pool []domain.ScoredSnippet, claims []domain.ModelClaim) []domain.Citation {
	return ReconcileCitations(pool, claims)
}

// ResolvePlaybackRanges derives merged playback windows for citations.
func (g *GroundingService) ResolvePlaybackRanges(citations []domain.Citation, segments []domain.TranscriptSegment, videoDurationSec float64) []domain.PlaybackRange {
	return ResolvePlaybackRanges(citations, segments, videoDurationSec)
}

// AskService answers questions grounded in one page or video context.
type AskService struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewAskService creates a new ask service.
// The prompts parameter is optional (can be nil).
func NewAskService(llm driven.LLMService, prompts driven.PromptStore) *AskService {
	return &AskService{llm: llm, prompts: prompts}
}

// Ask runs the full grounding pipeline for one question.
//
// Transport failures of the LLM call surface as errors; malformed reply
// content never does - the reconciler's fallbacks absorb it.
func (s *AskService) Ask(ctx context.Context, question, rawText string, segments []domain.TranscriptSegment) (*domain.Answer, error) {
	logger.Section("Ask")
	logger.Debug("Question: %q", question)

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrEmptyQuestion
	}

	snippets, err := BuildSnippets(rawText, segments)
	if err != nil {
		return nil, fmt.Errorf("build snippets: %w", err)
	}

	ranked, err := RankSnippets(question, snippets)
	if err != nil {
		return nil, fmt.Errorf("rank snippets: %w", err)
	}

	prompt, err := s.buildPrompt(question, ranked)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	logger.Debug("Prompt: %d bytes, pool: %d snippets", len(prompt), len(ranked))

	raw, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   700,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	reply := ParseModelReply(raw)
	citations := ReconcileCitations(ranked, reply.Sources)

	answer := &domain.Answer{
		ID:        uuid.New().String(),
		Question:  question,
		Text:      reply.Answer,
		Sources:   citations,
		Model:     s.llm.ModelName(),
		CreatedAt: time.Now().UTC(),
	}

	logger.Info("Answer: %d chars, %d citations", len(answer.Text), len(answer.Sources))
	return answer, nil
}

// buildPrompt renders the grounded answer prompt with the ranked pool
// serialized as SNIPPETS_JSON.
func (s *AskService) buildPrompt(question string, ranked []domain.ScoredSnippet) (string, error) {
	template := defaultGroundedAnswerPrompt
	if s.prompts != nil {
		if loaded, err := s.prompts.Load(driven.PromptGroundedAnswer); err == nil && loaded != "" {
			template = loaded
		} else if err != nil {
			logger.Warn("Prompt store load failed: %v (using default)", err)
		}
	}

	pool, err := json.Marshal(ranked)
	if err != nil {
		return "", fmt.Errorf("marshal snippet pool: %w", err)
	}

	return fmt.Sprintf(template, question, string(pool)), nil
}
