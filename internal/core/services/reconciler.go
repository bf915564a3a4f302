package services

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// MaxCitations caps every finalized citation list.
const MaxCitations = 5

// maxPoolFallbackCitations is how many ranked snippets seed the
// citation list when the model's claims are unusable and the pool has
// no timestamped snippets.
const maxPoolFallbackCitations = 3

// ParseModelReply extracts the answer/sources object from a raw model
// response. It tolerates fenced code blocks, prose around the JSON and
// missing fields; a response with no parseable object at all becomes a
// bare answer with no claims, which the reconciler then falls back on.
// Never returns an error: reply content is untrusted data, not input.
func ParseModelReply(raw string) domain.ModelReply {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.ModelReply{}
	}

	// Strip a surrounding markdown fence if present.
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		var reply domain.ModelReply
		if err := json.Unmarshal([]byte(trimmed[start:end+1]), &reply); err == nil {
			reply.Answer = strings.TrimSpace(reply.Answer)
			return reply
		}
		logger.Warn("Model reply JSON did not parse, treating as plain text")
	}

	// No usable object: treat the whole response as the answer text.
	return domain.ModelReply{Answer: trimmed}
}

// ReconcileCitations maps the model's claimed citations back onto the
// ranked snippet pool. The model is never trusted blindly: hallucinated
// ids are discarded, scores clamped to [0,1], duplicates dropped. When
// the claims are unusable the pool itself supplies the citations, and
// timestamped snippets win over untimestamped ones because a grounded
// answer should cite a moment when one exists.
//
// The result is collapsed (chronologically close citations merged) and
// capped at MaxCitations. The fallback chain is order-sensitive;
// reordering it changes observable output on ambiguous pools.
func ReconcileCitations(pool []domain.ScoredSnippet, claims []domain.ModelClaim) []domain.Citation {
	logger.Section("Citation Reconciliation")
	logger.Debug("Pool: %d snippets, claims: %d", len(pool), len(claims))

	lookup := make(map[string]domain.ScoredSnippet, len(pool))
	for _, snip := range pool {
		lookup[snip.ID] = snip
	}

	picked := make([]domain.Citation, 0, len(claims))
	seen := make(map[string]struct{}, len(claims))

	for _, claim := range claims {
		snip, ok := lookup[claim.ID]
		if !ok {
			if claim.ID != "" {
				logger.Warn("Discarding claim for unknown snippet %q", claim.ID)
			}
			continue
		}
		if _, dup := seen[claim.ID]; dup {
			continue
		}
		seen[claim.ID] = struct{}{}

		cite := snip.Citation()
		if claim.Score != nil && !math.IsNaN(*claim.Score) && !math.IsInf(*claim.Score, 0) {
			cite.Score = clamp01(*claim.Score)
		}
		picked = append(picked, cite)
	}

	timestamped := timestampedCitations(pool)

	switch {
	case len(picked) == 0 && len(timestamped) > 0:
		// Unusable claims against a video context: cite moments.
		logger.Info("No usable claims, citing timestamped pool snippets")
		picked = timestamped

	case len(picked) == 0:
		// Unusable claims against a web context: top ranked snippets.
		logger.Info("No usable claims, citing top ranked snippets")
		n := len(pool)
		if n > maxPoolFallbackCitations {
			n = maxPoolFallbackCitations
		}
		for _, snip := range pool[:n] {
			picked = append(picked, snip.Citation())
		}

	case len(timestamped) > 0 && !anyTimestamped(picked):
		// The model answered a video question citing only web-ish
		// snippets; re-derive from the timestamped subset instead.
		logger.Info("Claims ignore timestamped snippets, re-deriving from moments")
		picked = timestamped
	}

	collapsed := CollapseTimestamps(picked)
	if len(collapsed) > MaxCitations {
		collapsed = collapsed[:MaxCitations]
	}

	logger.Debug("Final citations: %d", len(collapsed))
	return collapsed
}

// timestampedCitations returns the timestamped subset of the pool, in
// ranked order, capped at MaxCitations.
func timestampedCitations(pool []domain.ScoredSnippet) []domain.Citation {
	var out []domain.Citation
	for _, snip := range pool {
		if !snip.HasTimestamp() {
			continue
		}
		out = append(out, snip.Citation())
		if len(out) == MaxCitations {
			break
		}
	}
	return out
}

func anyTimestamped(citations []domain.Citation) bool {
	for _, c := range citations {
		if c.HasTimestamp() {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
