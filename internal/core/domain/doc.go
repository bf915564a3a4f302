// Package domain defines the core business entities for Sightline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Snippet: An addressable, bounded chunk of source text, optionally time-anchored
//   - ScoredSnippet: A snippet ranked against one question
//   - Citation: A snippet attached to an answer, with a confidence score
//   - PlaybackRange: A start/end time window on a video timeline
//   - TranscriptSegment: One timed cue from a video transcript
//   - Answer: A grounded answer with its citation list
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
