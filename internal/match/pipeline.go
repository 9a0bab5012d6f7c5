package match

import (
	"context"
	"fmt"
)

// SearchFunc is the injected external-search collaborator. It returns
// candidates in the remote service's relevance order. Implementations
// own their retry policy; Resolve never retries.
type SearchFunc func(ctx context.Context, query string) ([]Candidate, error)

// BuildQuery produces the deterministic search query for a track. The
// trailing "autogenerated" keyword biases results toward auto-uploaded
// topic audio rather than music videos.
func BuildQuery(track Track) string {
	return fmt.Sprintf("%s - %s autogenerated", track.Artist, track.Title)
}

// Resolve runs the per-track pipeline: build the search query, invoke
// the search collaborator, and rank the results. A search failure is
// surfaced as an unmatched outcome rather than an error so a single
// flaky search never aborts a batch.
func Resolve(ctx context.Context, track Track, search SearchFunc, cfg Config) Outcome {
	candidates, err := search(ctx, BuildQuery(track))
	if err != nil {
		return UnmatchedOutcome(track, fmt.Sprintf("search failed: %v", err))
	}
	return Rank(track, candidates, cfg)
}
