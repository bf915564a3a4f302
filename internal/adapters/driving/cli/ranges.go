package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
)

var (
	rangesCitations string
	rangesVTT       string
	rangesDuration  float64
	rangesJSON      bool
)

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Resolve playback ranges for a citation list",
	Long: `Reads a JSON citation list (as produced by 'ask --json') and resolves
the merged playback windows against a transcript. Useful for replaying
the cited moments of an earlier answer.`,
	Args: cobra.NoArgs,
	RunE: runRanges,
}

func init() {
	rangesCmd.Flags().StringVarP(&rangesCitations, "citations", "c", "", "JSON file holding a citation array (required)")
	rangesCmd.Flags().StringVar(&rangesVTT, "vtt", "", "WebVTT transcript the citations refer to")
	rangesCmd.Flags().Float64Var(&rangesDuration, "duration", 0, "video duration in seconds (bounds playback ranges)")
	rangesCmd.Flags().BoolVar(&rangesJSON, "json", false, "output ranges as JSON")
	rootCmd.AddCommand(rangesCmd)
}

func runRanges(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Grounding == nil {
		return errors.New("grounding service not configured")
	}
	if rangesCitations == "" {
		return errors.New("--citations is required")
	}

	data, err := os.ReadFile(rangesCitations)
	if err != nil {
		return fmt.Errorf("read citations: %w", err)
	}

	var citations []domain.Citation
	if err := json.Unmarshal(data, &citations); err != nil {
		return fmt.Errorf("parse citations: %w", err)
	}

	ctx := cmd.Context()
	var segments []domain.TranscriptSegment
	if rangesVTT != "" {
		_, segments, err = loadSource(ctx, "", rangesVTT)
		if err != nil {
			return err
		}
	}

	ranges := services.Grounding.ResolvePlaybackRanges(citations, segments, rangesDuration)

	if rangesJSON {
		return printJSON(cmd, ranges)
	}

	if len(ranges) == 0 {
		cmd.Println("No playable ranges.")
		return nil
	}
	for i := range ranges {
		cmd.Printf("  %s - %s  (%.1fs)\n", ranges[i].StartLabel, ranges[i].EndLabel, ranges[i].EndSec-ranges[i].StartSec)
	}
	return nil
}
