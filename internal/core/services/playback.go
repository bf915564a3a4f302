package services

import (
	"sort"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// Playback range thresholds.
const (
	// minRangeDurationSec is the smallest meaningful playback window.
	minRangeDurationSec = 1.0

	// fallbackRangeDurationSec is the synthesized window length when no
	// end can be inferred from the label or the transcript.
	fallbackRangeDurationSec = 6.0

	// rangeMergeGapSec merges ranges whose start trails the previous
	// range's end by at most this.
	rangeMergeGapSec = 0.35
)

// ResolvePlaybackRanges turns one answer's citations into merged
// start/end playback ranges against the full transcript. Citations
// without any time anchor are skipped; everything else resolves to a
// window with end strictly after start, so the consuming UI can clamp
// to the video duration without extra bookkeeping.
//
// The end of each window is inferred in order: a two-part range label
// on the citation itself, then the next transcript segment far enough
// past the citation's timestamp, then a fixed fallback duration. A
// positive videoDurationSec only trims the synthesized fallback end;
// real display-time clamping stays with the UI.
func ResolvePlaybackRanges(citations []domain.Citation, segments []domain.TranscriptSegment, videoDurationSec float64) []domain.PlaybackRange {
	logger.Section("Playback Ranges")

	ranges := make([]domain.PlaybackRange, 0, len(citations))
	for _, c := range citations {
		r, ok := resolveRange(c, segments, videoDurationSec)
		if !ok {
			continue
		}
		ranges = append(ranges, r)
	}

	merged := mergeRanges(ranges)
	logger.Debug("Resolved %d citations into %d ranges", len(citations), len(merged))
	return merged
}

// resolveRange infers one citation's playback window.
func resolveRange(c domain.Citation, segments []domain.TranscriptSegment, videoDurationSec float64) (domain.PlaybackRange, bool) {
	// A collapsed citation carries its own "start-end" label.
	if start, end, ok := domain.ParseRangeLabel(c.TimestampLabel); ok && end-start > minRangeDurationSec {
		return domain.PlaybackRange{
			StartSec:   start,
			EndSec:     end,
			StartLabel: domain.FormatTimestamp(start),
			EndLabel:   domain.FormatTimestamp(end),
		}, true
	}

	if !c.HasTimestamp() {
		return domain.PlaybackRange{}, false
	}
	start := *c.TimestampSec

	// The next transcript cue far enough past the start bounds the
	// quoted moment.
	for _, seg := range segments {
		if seg.StartSec > start+minRangeDurationSec {
			return domain.PlaybackRange{
				StartSec:   start,
				EndSec:     seg.StartSec,
				StartLabel: domain.FormatTimestamp(start),
				EndLabel:   domain.FormatTimestamp(seg.StartSec),
			}, true
		}
	}

	// Nothing to infer from: synthesize a short window.
	end := start + fallbackRangeDurationSec
	if videoDurationSec > 0 && end > videoDurationSec && videoDurationSec > start+minRangeDurationSec {
		end = videoDurationSec
	}
	return domain.PlaybackRange{
		StartSec:   start,
		EndSec:     end,
		StartLabel: domain.FormatTimestamp(start),
		EndLabel:   domain.FormatTimestamp(end),
	}, true
}

// mergeRanges sorts ranges by (start, end) and sweeps left to right,
// extending the current range whenever the next one starts at or before
// its end plus the merge gap.
func mergeRanges(ranges []domain.PlaybackRange) []domain.PlaybackRange {
	if len(ranges) == 0 {
		return nil
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].StartSec != ranges[j].StartSec {
			return ranges[i].StartSec < ranges[j].StartSec
		}
		return ranges[i].EndSec < ranges[j].EndSec
	})

	merged := []domain.PlaybackRange{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.StartSec <= last.EndSec+rangeMergeGapSec {
			if r.EndSec > last.EndSec {
				last.EndSec = r.EndSec
				last.EndLabel = r.EndLabel
			}
			continue
		}
		merged = append(merged, r)
	}

	return merged
}
