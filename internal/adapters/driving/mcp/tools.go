package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the supplied source"`
	Text     string `json:"text,omitempty" jsonschema:"plain page text to ground the answer in"`
	VTT      string `json:"vtt,omitempty" jsonschema:"WebVTT transcript content; takes precedence over text"`

	VideoDurationSec float64 `json:"video_duration_sec,omitempty" jsonschema:"video duration in seconds, used to bound playback ranges"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer    string           `json:"answer"`
	Model     string           `json:"model"`
	Citations []CitationOutput `json:"citations"`

	// Ranges are merged playback windows covering the cited moments.
	// Empty for web sources.
	Ranges []RangeOutput `json:"ranges,omitempty"`
}

// CitationOutput represents a single citation.
type CitationOutput struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Score          float64 `json:"score"`
	TimestampLabel string  `json:"timestamp_label,omitempty"`
}

// RangeOutput represents one playable window.
type RangeOutput struct {
	StartSec   float64 `json:"start_sec"`
	EndSec     float64 `json:"end_sec"`
	StartLabel string  `json:"start_label"`
	EndLabel   string  `json:"end_label"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question about a page or video transcript with exact citations",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	var segments []domain.TranscriptSegment
	if input.VTT != "" {
		if s.ports.Transcript == nil {
			return nil, AskOutput{}, fmt.Errorf("transcript input not supported: %w", domain.ErrUnsupportedFormat)
		}
		parsed, err := s.ports.Transcript.Parse(ctx, strings.NewReader(input.VTT))
		if err != nil {
			return nil, AskOutput{}, fmt.Errorf("parse transcript: %w", err)
		}
		segments = parsed
	}

	answer, err := s.ports.Ask.Ask(ctx, input.Question, input.Text, segments)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:    answer.Text,
		Model:     answer.Model,
		Citations: make([]CitationOutput, len(answer.Sources)),
	}

	for i := range answer.Sources {
		output.Citations[i] = CitationOutput{
			ID:             answer.Sources[i].ID,
			Text:           answer.Sources[i].Text,
			Score:          answer.Sources[i].Score,
			TimestampLabel: answer.Sources[i].TimestampLabel,
		}
	}

	// Attach playback windows for transcript-grounded citations.
	if len(segments) > 0 && s.ports.Grounding != nil {
		ranges := s.ports.Grounding.ResolvePlaybackRanges(answer.Sources, segments, input.VideoDurationSec)
		output.Ranges = make([]RangeOutput, len(ranges))
		for i := range ranges {
			output.Ranges[i] = RangeOutput{
				StartSec:   ranges[i].StartSec,
				EndSec:     ranges[i].EndSec,
				StartLabel: ranges[i].StartLabel,
				EndLabel:   ranges[i].EndLabel,
			}
		}
	}

	return nil, output, nil
}
