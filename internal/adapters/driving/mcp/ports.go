package mcp

import (
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers grounded questions.
	Ask driving.AskService

	// Grounding resolves playback ranges for transcript citations.
	Grounding driving.GroundingService

	// Transcript parses inline WebVTT transcripts.
	Transcript driven.TranscriptParser
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Grounding and Transcript are optional; without them the ask tool
	// still answers web questions.
	return nil
}
