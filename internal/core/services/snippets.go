package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// Snippet construction limits. These are part of the pipeline's
// observable behaviour; downstream ordering depends on them.
const (
	// MaxSnippetTextLen is the maximum display length of snippet text.
	MaxSnippetTextLen = 220

	// minTranscriptSnippetLen drops transcript snippets shorter than
	// this after truncation.
	minTranscriptSnippetLen = 8

	// minWebLineLen is the minimum length of a candidate line in web mode.
	minWebLineLen = 30

	// webBufferSlack allows the running buffer to exceed the display
	// length before flushing, so truncation cuts mid-buffer rather than
	// forcing one snippet per line.
	webBufferSlack = 50

	// maxWebSnippets caps web-mode output. Transcript mode is uncapped.
	maxWebSnippets = 24

	// blobFallbackLen is how much of the normalized text seeds the
	// single fallback snippet when splitting produced nothing.
	blobFallbackLen = 1400
)

// ellipsis marks truncated snippet text.
const ellipsis = "…"

// BuildSnippets turns extracted content into addressable snippets.
//
// A non-empty segment list selects transcript mode: each usable cue
// becomes exactly one snippet ("t-<n>", 1-based). Otherwise web mode
// splits rawText on blank lines and greedily packs candidate lines into
// bounded snippets ("w-<n>").
//
// It returns domain.ErrNoContent when the context has no extractable
// text at all; that is a caller validation failure, not data noise.
func BuildSnippets(rawText string, segments []domain.TranscriptSegment) ([]domain.Snippet, error) {
	if len(segments) > 0 {
		return buildTranscriptSnippets(segments)
	}
	return buildWebSnippets(rawText)
}

// buildTranscriptSnippets maps cues 1:1 into timestamped snippets.
// Cues with empty text or a broken start time are skipped; ids still
// advance so a snippet id always identifies the same source cue.
func buildTranscriptSnippets(segments []domain.TranscriptSegment) ([]domain.Snippet, error) {
	logger.Section("Snippet Building")
	logger.Debug("Transcript mode: %d segments", len(segments))

	snippets := make([]domain.Snippet, 0, len(segments))

	for i, seg := range segments {
		text := truncateText(normalizeText(seg.Text))
		if len([]rune(text)) < minTranscriptSnippetLen {
			continue
		}
		if seg.StartSec < 0 || math.IsNaN(seg.StartSec) || math.IsInf(seg.StartSec, 0) {
			continue
		}

		start := seg.StartSec
		snippets = append(snippets, domain.Snippet{
			ID:             "t-" + strconv.Itoa(i+1),
			Text:           text,
			TimestampSec:   &start,
			TimestampLabel: domain.FormatTimestamp(start),
		})
	}

	if len(snippets) == 0 {
		logger.Warn("Transcript produced no usable snippets")
		return nil, domain.ErrNoContent
	}

	logger.Debug("Built %d transcript snippets", len(snippets))
	return snippets, nil
}

// buildWebSnippets splits page text on blank-line boundaries and packs
// adjacent candidate lines into bounded snippets.
func buildWebSnippets(rawText string) ([]domain.Snippet, error) {
	logger.Section("Snippet Building")

	normalized := normalizeText(rawText)
	if normalized == "" {
		logger.Warn("No extractable text in context")
		return nil, domain.ErrNoContent
	}

	lines := candidateLines(rawText)
	logger.Debug("Web mode: %d candidate lines", len(lines))

	var snippets []domain.Snippet
	flushLimit := MaxSnippetTextLen + webBufferSlack

	buffer := ""
	flush := func() {
		if buffer == "" {
			return
		}
		snippets = append(snippets, domain.Snippet{
			ID:   "w-" + strconv.Itoa(len(snippets)+1),
			Text: truncateText(buffer),
		})
		buffer = ""
	}

	for _, line := range lines {
		if len(snippets) >= maxWebSnippets {
			break
		}
		if buffer != "" && len(buffer)+1+len(line) > flushLimit {
			flush()
		}
		if len(snippets) >= maxWebSnippets {
			break
		}
		if buffer == "" {
			buffer = line
		} else {
			buffer += " " + line
		}
	}
	if len(snippets) < maxWebSnippets {
		flush()
	}

	// One giant unbroken blob: fall back to a single snippet seeded
	// from the head of the whole text.
	if len(snippets) == 0 {
		head := normalized
		if runes := []rune(head); len(runes) > blobFallbackLen {
			head = string(runes[:blobFallbackLen])
		}
		logger.Debug("No candidate lines, falling back to single snippet")
		snippets = append(snippets, domain.Snippet{
			ID:   "w-1",
			Text: truncateText(head),
		})
	}

	logger.Debug("Built %d web snippets", len(snippets))
	return snippets, nil
}

// candidateLines splits raw text on blank-line boundaries and keeps
// normalized paragraphs long enough to be worth citing.
func candidateLines(rawText string) []string {
	var lines []string
	for _, block := range splitBlankLines(rawText) {
		line := normalizeText(block)
		if len(line) >= minWebLineLen {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitBlankLines splits text into blocks separated by one or more
// blank (whitespace-only) lines.
func splitBlankLines(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// normalizeText collapses all whitespace runs to single spaces.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncateText cuts text at MaxSnippetTextLen runes, appending an
// ellipsis when anything was removed. Plain character-count cut, not
// word-safe.
func truncateText(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxSnippetTextLen {
		return text
	}
	return string(runes[:MaxSnippetTextLen]) + ellipsis
}
