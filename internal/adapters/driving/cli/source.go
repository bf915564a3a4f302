package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
)

// loadSource reads the question's source material from --file or --vtt.
// Exactly one of filePath and vttPath must be set; vtt sources return
// segments, file sources return extracted text.
func loadSource(ctx context.Context, filePath, vttPath string) (string, []domain.TranscriptSegment, error) {
	switch {
	case filePath != "" && vttPath != "":
		return "", nil, errors.New("use either --file or --vtt, not both")

	case vttPath != "":
		if services == nil || services.Transcript == nil {
			return "", nil, errors.New("transcript parser not configured")
		}
		f, err := os.Open(vttPath)
		if err != nil {
			return "", nil, fmt.Errorf("open transcript: %w", err)
		}
		defer f.Close()

		segments, err := services.Transcript.Parse(ctx, f)
		if err != nil {
			return "", nil, fmt.Errorf("parse transcript: %w", err)
		}
		return "", segments, nil

	case filePath != "":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", nil, fmt.Errorf("read source: %w", err)
		}

		extractor := pickExtractor(filePath)
		if extractor == nil {
			return "", nil, errors.New("content extractors not configured")
		}

		text, err := extractor.Extract(ctx, content, filePath)
		if err != nil {
			return "", nil, fmt.Errorf("extract text: %w", err)
		}
		return text, nil, nil

	default:
		return "", nil, errors.New("a source is required: --file <page> or --vtt <transcript>")
	}
}

// pickExtractor chooses an extractor by file extension.
func pickExtractor(path string) driven.ContentExtractor {
	if services == nil {
		return nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		if services.HTMLExtractor != nil {
			return services.HTMLExtractor
		}
	}
	if services.TextExtractor != nil {
		return services.TextExtractor
	}
	return nil
}
