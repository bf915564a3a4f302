package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

func webSnippet(id, text string) domain.Snippet {
	return domain.Snippet{ID: id, Text: text}
}

func TestScoreSnippet(t *testing.T) {
	snip := webSnippet("w-1", "Paris is the capital of France")

	t.Run("overlap ratio", func(t *testing.T) {
		score := ScoreSnippet([]string{"capital", "france"}, snip)
		assert.InDelta(t, 1.0, score, 1e-9) // both tokens present
	})

	t.Run("partial overlap", func(t *testing.T) {
		score := ScoreSnippet([]string{"capital", "weather"}, snip)
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("no question tokens", func(t *testing.T) {
		assert.Zero(t, ScoreSnippet(nil, snip))
	})

	t.Run("no snippet tokens", func(t *testing.T) {
		assert.Zero(t, ScoreSnippet([]string{"capital"}, webSnippet("w-2", "a an !!")))
	})

	t.Run("phrase bonus", func(t *testing.T) {
		// Same token overlap, but only one snippet carries the
		// question's first four tokens as a literal phrase.
		tokens := []string{"capital", "france", "europe", "history", "medieval"}
		scattered := ScoreSnippet(tokens, webSnippet("w-3", "france capital history europe lesson"))
		phrased := ScoreSnippet(tokens, webSnippet("w-4", "capital france europe history lesson"))
		assert.InDelta(t, phraseBonus, phrased-scattered, 1e-9)
	})

	t.Run("clamped to one", func(t *testing.T) {
		full := webSnippet("w-4", "capital capital indeed")
		score := ScoreSnippet([]string{"capital"}, full)
		assert.LessOrEqual(t, score, 1.0)
	})
}

func TestRankSnippets_EmptyQuestion(t *testing.T) {
	_, err := RankSnippets("", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)

	_, err = RankSnippets("   \t", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
}

func TestRankSnippets_OrdersByScore(t *testing.T) {
	snippets := []domain.Snippet{
		webSnippet("w-1", "Paris is the capital of France"),
		webSnippet("w-2", "unrelated text about weather"),
	}

	ranked, err := RankSnippets("what is the capital", snippets)
	require.NoError(t, err)
	require.NotEmpty(t, ranked)

	assert.Equal(t, "w-1", ranked[0].ID)
	assert.Greater(t, ranked[0].Score, 0.0)
	// Zero-score snippets are excluded entirely when anything matched.
	for _, s := range ranked {
		assert.NotEqual(t, "w-2", s.ID)
	}
}

func TestRankSnippets_NonIncreasingAndCapped(t *testing.T) {
	var snippets []domain.Snippet
	texts := []string{
		"go channels and goroutines",
		"go generics design",
		"go modules and versioning",
		"go garbage collector tuning",
		"go scheduler internals",
		"go testing practices",
		"go error handling",
		"go interfaces explained",
		"go memory model",
		"go compiler optimizations",
		"go standard library tour",
		"go profiling with pprof",
	}
	for i, text := range texts {
		snippets = append(snippets, webSnippet("w-"+string(rune('a'+i)), text))
	}

	ranked, err := RankSnippets("golang channels goroutines scheduler profiling", snippets)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(ranked), MaxRankedSnippets)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankSnippets_StableOnTies(t *testing.T) {
	snippets := []domain.Snippet{
		webSnippet("w-1", "alpha topic sentence"),
		webSnippet("w-2", "alpha topic sentence"),
		webSnippet("w-3", "alpha topic sentence"),
	}

	ranked, err := RankSnippets("alpha", snippets)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, []string{"w-1", "w-2", "w-3"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankSnippets_FallbackWhenNothingMatches(t *testing.T) {
	snippets := []domain.Snippet{
		webSnippet("w-1", "completely different subject"),
		webSnippet("w-2", "nothing relevant either"),
		webSnippet("w-3", "still nothing"),
		webSnippet("w-4", "more filler content here"),
		webSnippet("w-5", "yet another paragraph"),
		webSnippet("w-6", "and one more for good measure"),
	}

	ranked, err := RankSnippets("quantum chromodynamics", snippets)
	require.NoError(t, err)
	require.Len(t, ranked, 5) // min(5, N)

	// Original order with strictly decreasing synthetic scores.
	for i, s := range ranked {
		assert.Equal(t, snippets[i].ID, s.ID)
		want := 0.1 - 0.01*float64(i)
		if want < 0.05 {
			want = 0.05
		}
		assert.InDelta(t, want, s.Score, 1e-9)
	}
	for i := 1; i < len(ranked); i++ {
		assert.Less(t, ranked[i].Score, ranked[i-1].Score)
	}
}

func TestRankSnippets_FallbackSmallPool(t *testing.T) {
	snippets := []domain.Snippet{
		webSnippet("w-1", "irrelevant one"),
		webSnippet("w-2", "irrelevant two"),
	}

	ranked, err := RankSnippets("quasars", snippets)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.InDelta(t, 0.10, ranked[0].Score, 1e-9)
	assert.InDelta(t, 0.09, ranked[1].Score, 1e-9)
}
