package driven

import "context"

// ContentExtractor turns raw page bytes into plain text suitable for
// snippet building. Each extractor handles specific MIME types.
//
// Extraction is a collaborator concern: the grounding core only ever
// sees the plain-text result.
type ContentExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Extract returns the readable text of the page. The uri is used
	// for relative-link resolution and diagnostics only.
	Extract(ctx context.Context, content []byte, uri string) (string, error)
}
