// Package match implements the track-to-candidate matching engine:
// string similarity scoring, candidate ranking and the per-track
// resolution pipeline.
package match

// Track is an authoritative metadata record for a song from the catalog.
// Title, Artist and Duration drive matching; the remaining fields are
// carried for the download-side collaborators (tagging, history).
type Track struct {
	ID       string // opaque catalog identifier
	Title    string
	Artist   string // comma-joined artist names
	Album    string
	Year     string
	Duration int // seconds
}

// Candidate is a single search result considered as a surrogate for a
// Track. It is constructed at the search-collaborator boundary so the
// matching code never sees a raw API response shape.
type Candidate struct {
	ID       string
	Title    string
	Uploader string
	Duration int    // seconds, 0 when the source did not report one
	URL      string // retrieval handle passed to the downloader
}

// Score holds the per-pair comparison results between a Track and a
// Candidate. Computed transiently during ranking, never persisted.
type Score struct {
	TitleSimilarity  float64
	ArtistSimilarity float64
	DurationDelta    int
	Accepted         bool
}

// Combined returns the ranking key used to order accepted candidates.
func (s Score) Combined() float64 {
	return s.TitleSimilarity + s.ArtistSimilarity
}

// Outcome is the result of resolving one Track: either a selected
// Candidate or a documented non-match. Exactly one Outcome exists per
// input Track.
type Outcome struct {
	Track     Track
	Candidate *Candidate // nil when unmatched
	Reason    string     // set when unmatched
}

// Matched reports whether a candidate was selected.
func (o Outcome) Matched() bool {
	return o.Candidate != nil
}

// MatchedOutcome builds a successful outcome for track with the chosen
// candidate.
func MatchedOutcome(track Track, candidate Candidate) Outcome {
	return Outcome{Track: track, Candidate: &candidate}
}

// UnmatchedOutcome builds a failed outcome for track with a
// human-readable reason.
func UnmatchedOutcome(track Track, reason string) Outcome {
	return Outcome{Track: track, Reason: reason}
}

// Config holds the matching tunables. It is built once at startup and
// passed by value; nothing mutates it during a run.
type Config struct {
	MaxResults                int     // candidates considered per track
	DurationTolerance         int     // max acceptable duration delta, seconds
	TitleSimilarityThreshold  float64 // in [0,1]
	ArtistSimilarityThreshold float64 // in [0,1]
}

// DefaultConfig returns the default matching tunables. The artist
// threshold of 0.05 is a near-zero gate kept from the original
// deployment; see DESIGN.md before changing it.
func DefaultConfig() Config {
	return Config{
		MaxResults:                5,
		DurationTolerance:         10,
		TitleSimilarityThreshold:  0.7,
		ArtistSimilarityThreshold: 0.05,
	}
}
