// Package batch drives the per-track match pipeline over a full track
// list with a bounded worker pool and collects the final tally.
package batch

import (
	"context"
	"log/slog"
	"sync"

	"trackmirror/internal/match"
)

// DefaultWorkers is the default number of concurrent track resolutions.
// Worker count governs throughput only, never matching semantics, so it
// lives here rather than in match.Config.
const DefaultWorkers = 4

// DownloadFunc retrieves the chosen candidate for track into local
// storage. Implementations must not overwrite existing files and must
// leave no partially written final files behind on failure.
type DownloadFunc func(ctx context.Context, track match.Track, candidate match.Candidate) error

// Failure records a track that could not be fully processed, with a
// human-readable reason.
type Failure struct {
	Track  match.Track
	Reason string
}

// Result is the complete tally of a batch run. Failure slices are in
// original input order regardless of completion order.
type Result struct {
	Total      int
	Matched    int
	Downloaded int
	Unmatched  []Failure
	Failed     []Failure // matched but not downloaded
}

// Success reports whether every track was matched and downloaded.
func (r Result) Success() bool {
	return len(r.Unmatched) == 0 && len(r.Failed) == 0
}

// Coordinator runs the match pipeline and the download collaborator
// over a track list.
type Coordinator struct {
	search   match.SearchFunc
	download DownloadFunc
	cfg      match.Config
	workers  int
	logger   *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithWorkers sets the number of concurrent in-flight resolutions.
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Coordinator with the given collaborators and matching
// configuration.
func New(search match.SearchFunc, download DownloadFunc, cfg match.Config, opts ...Option) *Coordinator {
	c := &Coordinator{
		search:   search,
		download: download,
		cfg:      cfg,
		workers:  DefaultWorkers,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// trackResult is the per-track record written by workers, addressed by
// input index so reporting stays in input order.
type trackResult struct {
	outcome     match.Outcome
	downloadErr error
}

// Run resolves every track and downloads each match. Individual search,
// match and download failures are recorded and never abort the batch;
// Run always returns a complete tally. On context cancellation the
// remaining tracks are recorded as unmatched with the cancellation
// reason.
func (c *Coordinator) Run(ctx context.Context, tracks []match.Track) Result {
	result := Result{Total: len(tracks)}
	if len(tracks) == 0 {
		return result
	}

	results := make([]trackResult, len(tracks))

	type workItem struct {
		index int
		track match.Track
	}
	workCh := make(chan workItem, len(tracks))
	for i, t := range tracks {
		workCh <- workItem{index: i, track: t}
	}
	close(workCh)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for work := range workCh {
				if err := ctx.Err(); err != nil {
					results[work.index] = trackResult{
						outcome: match.UnmatchedOutcome(work.track, "cancelled: "+err.Error()),
					}
					continue
				}
				results[work.index] = c.process(ctx, work.track)
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		track := r.outcome.Track
		if !r.outcome.Matched() {
			result.Unmatched = append(result.Unmatched, Failure{Track: track, Reason: r.outcome.Reason})
			continue
		}
		result.Matched++
		if r.downloadErr != nil {
			result.Failed = append(result.Failed, Failure{Track: track, Reason: r.downloadErr.Error()})
			continue
		}
		result.Downloaded++
	}

	return result
}

// process resolves and, on a match, downloads a single track.
func (c *Coordinator) process(ctx context.Context, track match.Track) trackResult {
	outcome := match.Resolve(ctx, track, c.search, c.cfg)
	if !outcome.Matched() {
		c.logger.Info("no match",
			"title", track.Title,
			"artist", track.Artist,
			"reason", outcome.Reason)
		return trackResult{outcome: outcome}
	}

	c.logger.Info("matched",
		"title", track.Title,
		"artist", track.Artist,
		"url", outcome.Candidate.URL)

	if err := c.download(ctx, track, *outcome.Candidate); err != nil {
		c.logger.Error("download failed",
			"title", track.Title,
			"artist", track.Artist,
			"error", err)
		return trackResult{outcome: outcome, downloadErr: err}
	}

	return trackResult{outcome: outcome}
}
