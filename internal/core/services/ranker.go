package services

import (
	"sort"
	"strings"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// Ranking limits and heuristics. The fallback constants are part of the
// observable contract: downstream consumers rely on this exact ordering.
const (
	// MaxRankedSnippets caps the ranked list.
	MaxRankedSnippets = 10

	// maxFallbackSnippets caps the synthetic fallback list when no
	// snippet matches the question at all.
	maxFallbackSnippets = 5

	// phraseBonus is added when a snippet contains the question's
	// leading tokens as a literal phrase.
	phraseBonus = 0.1

	// phraseTokenCount is how many leading question tokens form the
	// bonus phrase.
	phraseTokenCount = 4
)

// ScoreSnippet scores one snippet against a question's token list.
// The result is the token overlap ratio plus a phrase bonus, in [0, 1].
// Zero question tokens or zero snippet tokens score 0.
func ScoreSnippet(questionTokens []string, snippet domain.Snippet) float64 {
	if len(questionTokens) == 0 {
		return 0
	}

	snippetTokens := tokenSet(snippet.Text)
	if len(snippetTokens) == 0 {
		return 0
	}

	overlap := 0
	for _, tok := range questionTokens {
		if _, ok := snippetTokens[tok]; ok {
			overlap++
		}
	}

	score := float64(overlap) / float64(len(questionTokens))

	// Literal-phrase bonus over the question's leading tokens,
	// applied even for single-token questions.
	n := phraseTokenCount
	if n > len(questionTokens) {
		n = len(questionTokens)
	}
	phrase := strings.Join(questionTokens[:n], " ")
	if phrase != "" && strings.Contains(strings.ToLower(snippet.Text), phrase) {
		score += phraseBonus
	}

	if score > 1 {
		score = 1
	}
	return score
}

// RankSnippets orders snippets by relevance to the question, highest
// score first, ties keeping input order. At most MaxRankedSnippets are
// returned and zero-score snippets are excluded.
//
// When no snippet scores above zero the first min(5, N) snippets are
// returned with descending synthetic scores, so a user always sees some
// candidate sources rather than an empty citation list.
//
// An empty question is a caller bug and fails fast with
// domain.ErrEmptyQuestion.
func RankSnippets(question string, snippets []domain.Snippet) ([]domain.ScoredSnippet, error) {
	logger.Section("Snippet Ranking")

	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrEmptyQuestion
	}

	questionTokens := Tokenize(question)
	logger.Debug("Question tokens: %v", questionTokens)

	scored := make([]domain.ScoredSnippet, 0, len(snippets))
	for _, snip := range snippets {
		score := ScoreSnippet(questionTokens, snip)
		if score > 0 {
			scored = append(scored, domain.ScoredSnippet{Snippet: snip, Score: score})
		}
	}

	if len(scored) == 0 {
		logger.Info("No snippet matched, using positional fallback")
		return fallbackRanking(snippets), nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > MaxRankedSnippets {
		scored = scored[:MaxRankedSnippets]
	}

	logger.Debug("Ranked %d snippets, best %.3f", len(scored), scored[0].Score)
	return scored, nil
}

// fallbackRanking assigns descending synthetic scores to the leading
// snippets in original order.
func fallbackRanking(snippets []domain.Snippet) []domain.ScoredSnippet {
	n := len(snippets)
	if n > maxFallbackSnippets {
		n = maxFallbackSnippets
	}

	ranked := make([]domain.ScoredSnippet, 0, n)
	for i := 0; i < n; i++ {
		score := 0.1 - 0.01*float64(i)
		if score < 0.05 {
			score = 0.05
		}
		ranked = append(ranked, domain.ScoredSnippet{Snippet: snippets[i], Score: score})
	}
	return ranked
}
