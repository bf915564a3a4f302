package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTimestamp renders a non-negative second offset as "M:SS" under
// one hour and "H:MM:SS" from one hour. Fractional seconds are floored.
func FormatTimestamp(sec float64) string {
	if sec < 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		sec = 0
	}

	total := int(math.Floor(sec))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseTimestamp parses a "SS", "M:SS" or "H:MM:SS" label into seconds.
// It returns false for anything else.
func ParseTimestamp(label string) (float64, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}

	parts := strings.Split(label, ":")
	if len(parts) > 3 {
		return 0, false
	}

	total := 0.0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return 0, false
		}
		total = total*60 + v
	}

	return total, true
}

// ParseRangeLabel parses a two-part label like "1:02-1:10" or
// "1:02 - 1:10" into start and end seconds. It returns false unless
// both parts parse and end is greater than start.
func ParseRangeLabel(label string) (start, end float64, ok bool) {
	first, rest, found := strings.Cut(label, "-")
	if !found {
		return 0, 0, false
	}

	start, ok = ParseTimestamp(first)
	if !ok {
		return 0, 0, false
	}
	end, ok = ParseTimestamp(rest)
	if !ok || end <= start {
		return 0, 0, false
	}

	return start, end, true
}
