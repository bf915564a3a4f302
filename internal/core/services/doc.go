// Package services implements the grounding pipeline behind the driving
// ports: snippet building, ranking, citation reconciliation, timestamp
// collapsing and playback range resolution, plus the ask orchestration
// that ties them to the LLM adapter.
//
// Everything except AskService.Ask is a synchronous, side-effect-free
// pure function over immutable inputs. Nothing here holds state between
// calls, so many questions for the same context may be scored and
// ranked concurrently with no coordination.
package services
