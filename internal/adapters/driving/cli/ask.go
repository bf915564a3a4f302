package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

var (
	askFile     string
	askVTT      string
	askDuration float64
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a page or transcript",
	Long: `Answers a question grounded in a single source and cites the exact
snippets the answer came from. Transcript sources additionally resolve
playable time ranges for each cited moment.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "HTML, markdown or plain text source file")
	askCmd.Flags().StringVar(&askVTT, "vtt", "", "WebVTT transcript source file")
	askCmd.Flags().Float64Var(&askDuration, "duration", 0, "video duration in seconds (bounds playback ranges)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

// askResult is the JSON output shape of the ask command.
type askResult struct {
	*domain.Answer

	Ranges []domain.PlaybackRange `json:"ranges,omitempty"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if services == nil || services.Ask == nil {
		return errors.New("ask service not configured")
	}

	ctx := cmd.Context()
	rawText, segments, err := loadSource(ctx, askFile, askVTT)
	if err != nil {
		return err
	}

	answer, err := services.Ask.Ask(ctx, question, rawText, segments)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	result := askResult{Answer: answer}
	if len(segments) > 0 && services.Grounding != nil {
		result.Ranges = services.Grounding.ResolvePlaybackRanges(answer.Sources, segments, askDuration)
	}

	if askJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputAnswer(cmd, result)
}

func outputAnswer(cmd *cobra.Command, result askResult) error {
	cmd.Println(result.Text)
	cmd.Println()

	if len(result.Sources) == 0 {
		cmd.Println("No citations.")
		return nil
	}

	cmd.Println("Sources:")
	for i := range result.Sources {
		c := result.Sources[i]
		if c.TimestampLabel != "" {
			cmd.Printf("  [%s] %s  %s (%.2f)\n", c.ID, c.TimestampLabel, c.Text, c.Score)
		} else {
			cmd.Printf("  [%s] %s (%.2f)\n", c.ID, c.Text, c.Score)
		}
	}

	if len(result.Ranges) > 0 {
		cmd.Println()
		cmd.Println("Play:")
		for i := range result.Ranges {
			r := result.Ranges[i]
			cmd.Printf("  %s - %s\n", r.StartLabel, r.EndLabel)
		}
	}

	return nil
}
