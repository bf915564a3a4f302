package mcp

import (
	"context"
	"io"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

// mockAskService implements driving.AskService for testing.
type mockAskService struct {
	answer       *domain.Answer
	err          error
	lastQuestion string
	lastSegments []domain.TranscriptSegment
}

func (m *mockAskService) Ask(_ context.Context, question, _ string, segments []domain.TranscriptSegment) (*domain.Answer, error) {
	m.lastQuestion = question
	m.lastSegments = segments
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

// mockGroundingService implements driving.GroundingService for testing.
type mockGroundingService struct {
	ranges []domain.PlaybackRange
}

func (m *mockGroundingService) BuildSnippets(_ string, _ []domain.TranscriptSegment) ([]domain.Snippet, error) {
	return nil, nil
}

func (m *mockGroundingService) RankSnippets(_ string, _ []domain.Snippet) ([]domain.ScoredSnippet, error) {
	return nil, nil
}

func (m *mockGroundingService) ReconcileCitations(_ []domain.ScoredSnippet, _ []domain.ModelClaim) []domain.Citation {
	return nil
}

func (m *mockGroundingService) ResolvePlaybackRanges(_ []domain.Citation, _ []domain.TranscriptSegment, _ float64) []domain.PlaybackRange {
	return m.ranges
}

// mockTranscriptParser implements driven.TranscriptParser for testing.
type mockTranscriptParser struct {
	segments []domain.TranscriptSegment
	err      error
}

func (m *mockTranscriptParser) Parse(_ context.Context, _ io.Reader) ([]domain.TranscriptSegment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.segments, nil
}
