package cli

import (
	"context"
	"io"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	coreservices "github.com/sightline-dev/sightline-cli/internal/core/services"
)

// mockAskService returns a canned answer for command tests.
type mockAskService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAskService) Ask(_ context.Context, question, _ string, _ []domain.TranscriptSegment) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	a := *m.answer
	a.Question = question
	return &a, nil
}

// mockTranscriptParser returns fixed segments for command tests.
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

// mockExtractor passes bytes through as text.
type mockExtractor struct{}

func (mockExtractor) SupportedMIMETypes() []string { return []string{"text/plain"} }

func (mockExtractor) Extract(_ context.Context, content []byte, _ string) (string, error) {
	return string(content), nil
}

// setupTestServices wires mock services and returns a cleanup func.
func setupTestServices() func() {
	old := services

	ts := 42.0
	services = &Services{
		Ask: &mockAskService{answer: &domain.Answer{
			ID:    "a-1",
			Text:  "It was completed in 1889.",
			Model: "mock-model",
			Sources: []domain.Citation{
				{ID: "t-2", Text: "The tower was completed in 1889.", Score: 0.95, TimestampSec: &ts, TimestampLabel: "0:42"},
			},
		}},
		Grounding: coreservices.NewGroundingService(),
		Transcript: &mockTranscriptParser{segments: []domain.TranscriptSegment{
			{ID: "c1", StartSec: 42, StartLabel: "0:42", Text: "The tower was completed in 1889."},
			{ID: "c2", StartSec: 60, StartLabel: "1:00", Text: "Now a word about the restoration work."},
		}},
		HTMLExtractor: mockExtractor{},
		TextExtractor: mockExtractor{},
	}

	return func() {
		services = old
	}
}
