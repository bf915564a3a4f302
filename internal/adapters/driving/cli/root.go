// Package cli implements the sightline command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driving"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// version is set from main at startup.
var version = "dev"

// Services aggregates everything the commands need.
// main wires adapters and core services into this struct.
type Services struct {
	// Ask answers grounded questions.
	Ask driving.AskService

	// Grounding exposes the deterministic pipeline for the debugging
	// commands (snippets, ranges).
	Grounding driving.GroundingService

	// Transcript parses WebVTT transcript files.
	Transcript driven.TranscriptParser

	// HTMLExtractor turns HTML pages into article text.
	HTMLExtractor driven.ContentExtractor

	// TextExtractor handles plain text and markdown sources.
	TextExtractor driven.ContentExtractor

	// PromptWatcher, when set, is started by long-running commands so
	// prompt edits on disk take effect without a restart.
	PromptWatcher interface{ Watch() error }
}

// services holds the current command wiring.
var services *Services

// verbose enables debug logging on stderr.
var verbose bool

// rootCmd is the base command for sightline.
var rootCmd = &cobra.Command{
	Use:   "sightline",
	Short: "Grounded Q&A with exact citations",
	Long: `Sightline answers questions about a web page or video transcript and
backs every answer with citations pointing at the exact snippet or
playable time range the answer came from.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// SetServices sets the command wiring. Must be called before Execute.
func SetServices(s *Services) {
	services = s
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
