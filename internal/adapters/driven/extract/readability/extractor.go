// Package readability extracts article text from HTML pages.
package readability

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/sightline-dev/sightline-cli/internal/core/domain"
	"github.com/sightline-dev/sightline-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.ContentExtractor = (*Extractor)(nil)

// maxExtractedChars caps the extracted text so a pathological page
// cannot flood the snippet builder.
const maxExtractedChars = 200_000

// Extractor turns an HTML page into readable article text using the
// readability algorithm. Boilerplate (nav, ads, footers) is stripped,
// which keeps the snippet pool on the page's actual content.
type Extractor struct{}

// NewExtractor creates a new HTML article extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Extract returns the readable text of the page.
func (e *Extractor) Extract(ctx context.Context, content []byte, uri string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return "", domain.ErrNoContent
	}

	pageURL, err := url.Parse(uri)
	if err != nil {
		pageURL = &url.URL{}
	}

	article, err := readability.FromReader(bytes.NewReader(content), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability: parse %q: %w", uri, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", domain.ErrNoContent
	}
	if len(text) > maxExtractedChars {
		text = text[:maxExtractedChars]
	}

	return text, nil
}
