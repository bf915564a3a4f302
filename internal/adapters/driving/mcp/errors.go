// Package mcp provides an MCP (Model Context Protocol) server adapter for Sightline.
// It enables AI assistants like Claude to ask grounded questions about a page or video.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
