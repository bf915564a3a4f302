package driving

import (
	"context"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

// GroundingService exposes the deterministic grounding pipeline to
// external actors. Every operation is a pure function of its inputs;
// calls for different questions or answers never interact.
type GroundingService interface {
	// BuildSnippets splits raw page text, or maps transcript segments
	// 1:1, into addressable snippets. Exactly one of rawText/segments
	// is used: a non-empty segment list selects transcript mode.
	BuildSnippets(rawText string, segments []domain.TranscriptSegment) ([]domain.Snippet, error)

	// RankSnippets orders snippets by lexical relevance to the
	// question, highest first, with a deterministic fallback when
	// nothing matches.
	RankSnippets(question string, snippets []domain.Snippet) ([]domain.ScoredSnippet, error)

	// ReconcileCitations maps an untrusted model claim list back onto
	// the ranked pool, validating, clamping and collapsing.
	ReconcileCitations(pool []domain.ScoredSnippet, claims []domain.ModelClaim) []domain.Citation

	// ResolvePlaybackRanges turns a message's citations into merged
	// start/end playback ranges against the full transcript.
	ResolvePlaybackRanges(citations []domain.Citation, segments []domain.TranscriptSegment, videoDurationSec float64) []domain.PlaybackRange
}

// AskService answers questions grounded in a single page or video
// context.
type AskService interface {
	// Ask builds and ranks snippets for the context, queries the
	// language model with the ranked pool, and returns the answer with
	// its reconciled citation list.
	Ask(ctx context.Context, question, rawText string, segments []domain.TranscriptSegment) (*domain.Answer, error)
}
