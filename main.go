// Command sightline answers questions about a web page or video
// transcript with citations pointing at the exact source moment.
package main

import (
	"fmt"
	"os"

	"github.com/sightline-dev/sightline-cli/internal/adapters/driven/ai"
	configfile "github.com/sightline-dev/sightline-cli/internal/adapters/driven/config/file"
	"github.com/sightline-dev/sightline-cli/internal/adapters/driven/extract/plaintext"
	"github.com/sightline-dev/sightline-cli/internal/adapters/driven/extract/readability"
	"github.com/sightline-dev/sightline-cli/internal/adapters/driven/transcript/vtt"
	"github.com/sightline-dev/sightline-cli/internal/adapters/driving/cli"
	"github.com/sightline-dev/sightline-cli/internal/core/services"
	"github.com/sightline-dev/sightline-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("init prompts: %w", err)
	}
	defer promptStore.Close()

	// The LLM is optional at startup: snippets, ranges and version work
	// without one; ask fails with a clear error.
	settings := ai.SettingsFromConfig(configStore)
	llm, err := ai.CreateLLMService(&settings)
	if err != nil {
		logger.Warn("LLM unavailable: %v", err)
	}
	if llm != nil {
		defer llm.Close()
	}

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Ask:           services.NewAskService(llm, promptStore),
		Grounding:     services.NewGroundingService(),
		Transcript:    vtt.NewParser(),
		HTMLExtractor: readability.NewExtractor(),
		TextExtractor: plaintext.NewExtractor(),
		PromptWatcher: promptStore,
	})

	return cli.Execute()
}
