package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	snippetsFile     string
	snippetsVTT      string
	snippetsQuestion string
	snippetsJSON     bool
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Show the snippets built from a source",
	Long: `Builds the snippet pool the ask command would ground its answer in,
for inspecting how a source splits. With --question the pool is ranked
and scores are shown.`,
	Args: cobra.NoArgs,
	RunE: runSnippets,
}

func init() {
	snippetsCmd.Flags().StringVarP(&snippetsFile, "file", "f", "", "HTML, markdown or plain text source file")
	snippetsCmd.Flags().StringVar(&snippetsVTT, "vtt", "", "WebVTT transcript source file")
	snippetsCmd.Flags().StringVarP(&snippetsQuestion, "question", "q", "", "rank snippets against this question")
	snippetsCmd.Flags().BoolVar(&snippetsJSON, "json", false, "output snippets as JSON")
	rootCmd.AddCommand(snippetsCmd)
}

func runSnippets(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Grounding == nil {
		return errors.New("grounding service not configured")
	}

	ctx := cmd.Context()
	rawText, segments, err := loadSource(ctx, snippetsFile, snippetsVTT)
	if err != nil {
		return err
	}

	snippets, err := services.Grounding.BuildSnippets(rawText, segments)
	if err != nil {
		return fmt.Errorf("build snippets: %w", err)
	}

	if snippetsQuestion != "" {
		ranked, err := services.Grounding.RankSnippets(snippetsQuestion, snippets)
		if err != nil {
			return fmt.Errorf("rank snippets: %w", err)
		}

		if snippetsJSON {
			return printJSON(cmd, ranked)
		}
		for i := range ranked {
			cmd.Printf("  [%s] %.3f  %s\n", ranked[i].ID, ranked[i].Score, ranked[i].Text)
		}
		return nil
	}

	if snippetsJSON {
		return printJSON(cmd, snippets)
	}
	for i := range snippets {
		if snippets[i].TimestampLabel != "" {
			cmd.Printf("  [%s] %s  %s\n", snippets[i].ID, snippets[i].TimestampLabel, snippets[i].Text)
		} else {
			cmd.Printf("  [%s] %s\n", snippets[i].ID, snippets[i].Text)
		}
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
