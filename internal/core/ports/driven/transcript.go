package driven

import (
	"context"
	"io"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

// TranscriptParser reads a timed transcript (WebVTT, SRT, ...) and
// produces ordered segments for the grounding pipeline.
//
// Parsers skip cues they cannot make sense of rather than failing the
// whole transcript; an error is returned only when the input is not the
// parser's format at all.
type TranscriptParser interface {
	// Parse reads the transcript and returns its cues in order.
	Parse(ctx context.Context, r io.Reader) ([]domain.TranscriptSegment, error)
}
