package services

import (
	"sort"
	"strings"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

// Collapsing thresholds.
const (
	// collapseGapSec starts a new group when the next citation's
	// timestamp trails the previous one by more than this.
	collapseGapSec = 5.0

	// maxCollapsedTexts is how many distinct member texts a merged
	// citation joins.
	maxCollapsedTexts = 3

	// collapsedTextSeparator joins member texts of a merged citation.
	collapsedTextSeparator = " ... "
)

// CollapseTimestamps merges chronologically close timestamped citations
// into single citations covering the whole run, so three quotes from the
// same moment render as one highlight instead of three. Citations
// without a timestamp pass through unchanged. The result is capped at
// MaxCitations.
func CollapseTimestamps(citations []domain.Citation) []domain.Citation {
	var timestamped, plain []domain.Citation
	for _, c := range citations {
		if c.HasTimestamp() {
			timestamped = append(timestamped, c)
		} else {
			plain = append(plain, c)
		}
	}

	if len(timestamped) == 0 {
		if len(plain) > MaxCitations {
			plain = plain[:MaxCitations]
		}
		return plain
	}

	sort.SliceStable(timestamped, func(i, j int) bool {
		return *timestamped[i].TimestampSec < *timestamped[j].TimestampSec
	})

	var groups [][]domain.Citation
	current := []domain.Citation{timestamped[0]}
	for _, c := range timestamped[1:] {
		prev := current[len(current)-1]
		if *c.TimestampSec-*prev.TimestampSec > collapseGapSec {
			groups = append(groups, current)
			current = []domain.Citation{c}
			continue
		}
		current = append(current, c)
	}
	groups = append(groups, current)

	out := make([]domain.Citation, 0, len(groups)+len(plain))
	for _, group := range groups {
		out = append(out, mergeGroup(group))
	}
	// Untimestamped citations follow the merged moments.
	out = append(out, plain...)

	if len(out) > MaxCitations {
		out = out[:MaxCitations]
	}
	return out
}

// mergeGroup collapses an ordered run of citations into one. Groups of
// one pass through untouched.
func mergeGroup(group []domain.Citation) domain.Citation {
	if len(group) == 1 {
		return group[0]
	}

	first, last := group[0], group[len(group)-1]

	merged := domain.Citation{
		ID:           first.ID,
		TimestampSec: first.TimestampSec,
	}

	startLabel := domain.FormatTimestamp(*first.TimestampSec)
	endLabel := domain.FormatTimestamp(*last.TimestampSec)
	if startLabel == endLabel {
		merged.TimestampLabel = startLabel
	} else {
		merged.TimestampLabel = startLabel + "-" + endLabel
	}

	best := group[0]
	for _, c := range group {
		if c.Score > merged.Score {
			merged.Score = c.Score
		}
		if c.Score > best.Score {
			best = c
		}
	}

	var texts []string
	seen := make(map[string]struct{})
	for _, c := range group {
		text := strings.TrimSpace(c.Text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		texts = append(texts, text)
		if len(texts) == maxCollapsedTexts {
			break
		}
	}

	merged.Text = strings.Join(texts, collapsedTextSeparator)
	if merged.Text == "" {
		merged.Text = best.Text
	}

	return merged
}
