// Package plaintext passes plain text sources through unchanged.
package plaintext

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.ContentExtractor = (*Extractor)(nil)

// Extractor handles text/plain and markdown sources. The content is
// already readable; extraction just validates and normalises it.
type Extractor struct{}

// NewExtractor creates a new plain text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/markdown"}
}

// Extract returns the content as a string.
func (e *Extractor) Extract(ctx context.Context, content []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", domain.ErrUnsupportedFormat
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return "", domain.ErrNoContent
	}

	return text, nil
}
