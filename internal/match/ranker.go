package match

// ReasonNoMatch is the Outcome reason used when no candidate passed the
// acceptance thresholds.
const ReasonNoMatch = "no candidate met thresholds"

// ScoreCandidate compares one candidate against the track it was
// searched for and applies the acceptance predicate: both similarity
// thresholds must be met, and the duration delta must be within
// tolerance unless the candidate's duration is unknown (zero).
// Metadata-sparse entries are only penalized for actual mismatch,
// never for missing fields.
func ScoreCandidate(track Track, candidate Candidate, cfg Config) Score {
	s := Score{
		TitleSimilarity:  TextSimilarity(track.Title, candidate.Title),
		ArtistSimilarity: TextSimilarity(track.Artist, candidate.Uploader),
		DurationDelta:    DurationDelta(track.Duration, candidate.Duration),
	}

	durationOK := candidate.Duration == 0 || s.DurationDelta <= cfg.DurationTolerance
	s.Accepted = s.TitleSimilarity >= cfg.TitleSimilarityThreshold &&
		s.ArtistSimilarity >= cfg.ArtistSimilarityThreshold &&
		durationOK

	return s
}

// Rank selects the best acceptable candidate for track, or returns an
// unmatched outcome when none qualifies. Candidates are considered in
// the order the search collaborator returned them (its own relevance
// ranking) and truncated to cfg.MaxResults before scoring; no re-sort
// happens. Among accepted candidates the highest combined similarity
// wins, with ties broken by earliest position. Rank is total: any
// candidate slice, including nil, yields an outcome.
func Rank(track Track, candidates []Candidate, cfg Config) Outcome {
	if cfg.MaxResults > 0 && len(candidates) > cfg.MaxResults {
		candidates = candidates[:cfg.MaxResults]
	}

	bestIndex := -1
	var bestScore float64

	for i, candidate := range candidates {
		score := ScoreCandidate(track, candidate, cfg)
		if !score.Accepted {
			continue
		}
		// Strict comparison keeps the earliest candidate on ties.
		if bestIndex == -1 || score.Combined() > bestScore {
			bestIndex = i
			bestScore = score.Combined()
		}
	}

	if bestIndex == -1 {
		return UnmatchedOutcome(track, ReasonNoMatch)
	}
	return MatchedOutcome(track, candidates[bestIndex])
}
