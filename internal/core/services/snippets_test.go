package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

func seg(id string, start float64, text string) domain.TranscriptSegment {
	return domain.TranscriptSegment{
		ID:         id,
		StartSec:   start,
		StartLabel: domain.FormatTimestamp(start),
		Text:       text,
	}
}

func TestBuildSnippets_TranscriptMode(t *testing.T) {
	segments := []domain.TranscriptSegment{
		seg("c1", 5, "welcome to the talk about Go"),
		seg("c2", 12, "today we cover concurrency patterns"),
		seg("c3", 40, "channels are typed conduits"),
	}

	snippets, err := BuildSnippets("ignored raw text", segments)
	require.NoError(t, err)
	require.Len(t, snippets, 3)

	assert.Equal(t, "t-1", snippets[0].ID)
	assert.Equal(t, "t-2", snippets[1].ID)
	assert.Equal(t, "t-3", snippets[2].ID)

	require.NotNil(t, snippets[0].TimestampSec)
	assert.Equal(t, 5.0, *snippets[0].TimestampSec)
	assert.Equal(t, "0:05", snippets[0].TimestampLabel)
	assert.Equal(t, "welcome to the talk about Go", snippets[0].Text)
}

func TestBuildSnippets_TranscriptSkipsBrokenCues(t *testing.T) {
	segments := []domain.TranscriptSegment{
		seg("c1", 5, "   "),                       // empty text
		seg("c2", -3, "negative start is broken"), // bad timestamp
		seg("c3", 12, "short"),                    // under 8 chars after truncation
		seg("c4", 20, "this cue is perfectly fine"),
	}

	snippets, err := BuildSnippets("", segments)
	require.NoError(t, err)
	require.Len(t, snippets, 1)

	// The id tracks the source cue position, not the output position.
	assert.Equal(t, "t-4", snippets[0].ID)
	assert.Equal(t, "this cue is perfectly fine", snippets[0].Text)
}

func TestBuildSnippets_TranscriptAllBroken(t *testing.T) {
	segments := []domain.TranscriptSegment{
		seg("c1", 5, ""),
		seg("c2", -1, "bad"),
	}

	_, err := BuildSnippets("", segments)
	assert.ErrorIs(t, err, domain.ErrNoContent)
}

func TestBuildSnippets_WebMode(t *testing.T) {
	raw := "This paragraph is long enough to be a candidate line for building.\n\n" +
		"short\n\n" +
		"Another reasonably long paragraph that should also survive filtering."

	snippets, err := BuildSnippets(raw, nil)
	require.NoError(t, err)
	require.NotEmpty(t, snippets)

	assert.Equal(t, "w-1", snippets[0].ID)
	for _, s := range snippets {
		assert.False(t, s.HasTimestamp())
		assert.NotEmpty(t, s.Text)
		assert.NotContains(t, s.Text, "short")
	}
}

func TestBuildSnippets_WebFlushOnLength(t *testing.T) {
	para := strings.Repeat("word ", 40) // ~200 chars, above the candidate minimum
	raw := strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para)

	snippets, err := BuildSnippets(raw, nil)
	require.NoError(t, err)

	// Each paragraph is ~200 chars; two would exceed the 270-char flush
	// limit, so lines cannot all merge into one snippet.
	assert.Greater(t, len(snippets), 1)
	for i, s := range snippets {
		assert.Equal(t, "w-"+string(rune('1'+i)), s.ID)
		assert.LessOrEqual(t, len([]rune(s.Text)), MaxSnippetTextLen+1) // +1 for ellipsis
	}
}

func TestBuildSnippets_WebGiantBlobFallback(t *testing.T) {
	// Every blank-line-separated block is under the candidate minimum:
	// splitting yields nothing, the fallback kicks in.
	raw := strings.Repeat("tiny fragment\n\n", 400)

	snippets, err := BuildSnippets(raw, nil)
	require.NoError(t, err)
	require.Len(t, snippets, 1)

	assert.Equal(t, "w-1", snippets[0].ID)
	assert.NotEmpty(t, snippets[0].Text)
	assert.LessOrEqual(t, len([]rune(snippets[0].Text)), MaxSnippetTextLen+1)
}

func TestBuildSnippets_WebCapped(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString(strings.Repeat("x", 300))
		sb.WriteString("\n\n")
	}

	snippets, err := BuildSnippets(sb.String(), nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(snippets), 24)
}

func TestBuildSnippets_EmptyContext(t *testing.T) {
	_, err := BuildSnippets("", nil)
	assert.ErrorIs(t, err, domain.ErrNoContent)

	_, err = BuildSnippets("   \n\t\n  ", nil)
	assert.ErrorIs(t, err, domain.ErrNoContent)
}

func TestTruncateText(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, truncateText(short))

	long := strings.Repeat("a", MaxSnippetTextLen+10)
	got := truncateText(long)
	assert.Equal(t, MaxSnippetTextLen+1, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, ellipsis))

	exact := strings.Repeat("b", MaxSnippetTextLen)
	assert.Equal(t, exact, truncateText(exact))
}
