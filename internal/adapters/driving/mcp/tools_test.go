package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

func askAnswer() *domain.Answer {
	ts := 42.0
	return &domain.Answer{
		ID:       "a-1",
		Question: "when was the tower completed",
		Text:     "It was completed in 1889.",
		Model:    "mock-model",
		Sources: []domain.Citation{
			{ID: "t-2", Text: "The tower was completed in 1889.", Score: 0.95, TimestampSec: &ts, TimestampLabel: "0:42"},
		},
	}
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("answers web questions", func(t *testing.T) {
		mockAsk := &mockAskService{answer: askAnswer()}
		server, err := NewServer(&Ports{Ask: mockAsk})
		require.NoError(t, err)

		input := AskInput{Question: "when was the tower completed", Text: "The tower was completed in 1889."}
		_, output, err := server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "It was completed in 1889.", output.Answer)
		assert.Equal(t, "mock-model", output.Model)
		require.Len(t, output.Citations, 1)
		assert.Equal(t, "t-2", output.Citations[0].ID)
		assert.Equal(t, "0:42", output.Citations[0].TimestampLabel)
		assert.Empty(t, output.Ranges)
	})

	t.Run("parses inline transcript and attaches ranges", func(t *testing.T) {
		mockAsk := &mockAskService{answer: askAnswer()}
		parser := &mockTranscriptParser{segments: []domain.TranscriptSegment{
			{ID: "c1", StartSec: 42, StartLabel: "0:42", Text: "The tower was completed in 1889."},
		}}
		grounding := &mockGroundingService{ranges: []domain.PlaybackRange{
			{StartSec: 42, EndSec: 48, StartLabel: "0:42", EndLabel: "0:48"},
		}}
		server, err := NewServer(&Ports{Ask: mockAsk, Grounding: grounding, Transcript: parser})
		require.NoError(t, err)

		input := AskInput{Question: "when was the tower completed", VTT: "WEBVTT\n\n00:00:42.000 --> 00:00:47.000\nThe tower was completed in 1889.\n"}
		_, output, err := server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		require.Len(t, mockAsk.lastSegments, 1)
		require.Len(t, output.Ranges, 1)
		assert.Equal(t, 42.0, output.Ranges[0].StartSec)
		assert.Equal(t, 48.0, output.Ranges[0].EndSec)
	})

	t.Run("transcript input without parser fails", func(t *testing.T) {
		server, err := NewServer(&Ports{Ask: &mockAskService{answer: askAnswer()}})
		require.NoError(t, err)

		input := AskInput{Question: "anything", VTT: "WEBVTT\n"}
		_, _, err = server.handleAsk(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("returns error on ask failure", func(t *testing.T) {
		mockAsk := &mockAskService{err: errors.New("llm offline")}
		server, err := NewServer(&Ports{Ask: mockAsk})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "anything", Text: "words"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm offline")
	})
}

func TestNewServer_MissingAskService(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingAskService)
}
