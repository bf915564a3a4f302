// Package vtt parses WebVTT transcripts into timed segments.
package vtt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.TranscriptParser = (*Parser)(nil)

// Parser reads WebVTT cue blocks. Malformed cues are skipped; only a
// missing WEBVTT header fails the whole input.
type Parser struct{}

// NewParser creates a new WebVTT parser.
func NewParser() *Parser {
	return &Parser{}
}

// cueTimingRe matches "HH:MM:SS.mmm --> HH:MM:SS.mmm" with optional
// hours and optional cue settings after the end time.
var cueTimingRe = regexp.MustCompile(`^((?:\d+:)?\d{1,2}:\d{2}(?:\.\d{1,3})?)\s+-->\s+((?:\d+:)?\d{1,2}:\d{2}(?:\.\d{1,3})?)`)

// voiceTagRe strips <v Speaker> style inline tags from cue text.
var voiceTagRe = regexp.MustCompile(`<[^>]*>`)

// Parse reads the transcript and returns its cues in order.
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([]domain.TranscriptSegment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("vtt: read header: %w", err)
		}
		return nil, fmt.Errorf("vtt: empty input: %w", domain.ErrUnsupportedFormat)
	}

	header := strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "\uFEFF")
	if !strings.HasPrefix(header, "WEBVTT") {
		return nil, fmt.Errorf("vtt: missing WEBVTT header: %w", domain.ErrUnsupportedFormat)
	}

	var segments []domain.TranscriptSegment
	var cueStart float64
	var cueLines []string
	inCue := false

	flush := func() {
		if inCue {
			if seg, ok := buildSegment(len(segments)+1, cueStart, cueLines); ok {
				segments = append(segments, seg)
			}
		}
		inCue = false
		cueLines = nil
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimRight(scanner.Text(), " \t")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if m := cueTimingRe.FindStringSubmatch(line); m != nil {
			flush()
			start, err := parseCueTime(m[1])
			if err != nil {
				// Unusable timing: swallow the cue body.
				inCue = false
				continue
			}
			cueStart = start
			inCue = true
			continue
		}

		if inCue {
			cueLines = append(cueLines, line)
		}
		// Lines outside cues are identifiers, NOTE blocks or styling; skipped.
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vtt: read: %w", err)
	}
	flush()

	return segments, nil
}

// buildSegment assembles one segment from its cue lines.
func buildSegment(n int, startSec float64, lines []string) (domain.TranscriptSegment, bool) {
	text := strings.TrimSpace(voiceTagRe.ReplaceAllString(strings.Join(lines, " "), ""))
	if text == "" {
		return domain.TranscriptSegment{}, false
	}

	return domain.TranscriptSegment{
		ID:         "c" + strconv.Itoa(n),
		StartSec:   startSec,
		StartLabel: domain.FormatTimestamp(startSec),
		Text:       text,
	}, true
}

// parseCueTime converts "HH:MM:SS.mmm" (hours optional) to seconds.
func parseCueTime(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("vtt: bad cue time %q", s)
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("vtt: bad cue time %q", s)
		}
		total = total*60 + v
	}
	return total, nil
}
