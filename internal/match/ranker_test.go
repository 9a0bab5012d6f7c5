package match

import "testing"

func TestRankEmptyCandidates(t *testing.T) {
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}

	for _, candidates := range [][]Candidate{nil, {}} {
		outcome := Rank(track, candidates, DefaultConfig())
		if outcome.Matched() {
			t.Fatalf("Rank() with no candidates matched %+v", outcome.Candidate)
		}
		if outcome.Reason != ReasonNoMatch {
			t.Errorf("Reason = %q, want %q", outcome.Reason, ReasonNoMatch)
		}
	}
}

func TestRankPrefersCloserArtist(t *testing.T) {
	// A remastered upload by the right artist should beat an exact-title
	// cover: higher artist similarity, duration delta 1 within tolerance.
	track := Track{Title: "Yesterday", Artist: "The Beatles", Duration: 125}
	candidates := []Candidate{
		{Title: "Yesterday (Remastered)", Uploader: "The Beatles", Duration: 126, URL: "https://youtube.example/remaster"},
		{Title: "Yesterday", Uploader: "Cover Band", Duration: 130, URL: "https://youtube.example/cover"},
	}
	cfg := Config{
		MaxResults:                5,
		DurationTolerance:         10,
		TitleSimilarityThreshold:  0.7,
		ArtistSimilarityThreshold: 0.05,
	}

	outcome := Rank(track, candidates, cfg)
	if !outcome.Matched() {
		t.Fatalf("Rank() unmatched, reason %q", outcome.Reason)
	}
	if outcome.Candidate.URL != candidates[0].URL {
		t.Errorf("selected %q, want the remastered upload", outcome.Candidate.URL)
	}
}

func TestRankLeadingParenthesizedTitle(t *testing.T) {
	// The title's opening parenthesized phrase must not be stripped
	// away: an unrelated upload that also opens with a parenthesis
	// must lose to the real match by the right artist.
	track := Track{Title: "(Don't Fear) The Reaper", Artist: "Blue Oyster Cult", Duration: 305}
	candidates := []Candidate{
		{Title: "(Official Audio) Completely Different Song", Uploader: "randomchannel", Duration: 305, URL: "junk"},
		{Title: "Don't Fear The Reaper (Lyrics)", Uploader: "Blue Oyster Cult", Duration: 306, URL: "real"},
	}

	outcome := Rank(track, candidates, DefaultConfig())
	if !outcome.Matched() {
		t.Fatalf("Rank() unmatched, reason %q", outcome.Reason)
	}
	if outcome.Candidate.URL != "real" {
		t.Errorf("selected %q, want the right-artist upload", outcome.Candidate.URL)
	}
}

func TestRankRejectsUnrelatedCandidate(t *testing.T) {
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}
	candidates := []Candidate{
		{Title: "Unrelated Title", Uploader: "Someone Else", Duration: 40},
	}

	outcome := Rank(track, candidates, DefaultConfig())
	if outcome.Matched() {
		t.Fatalf("Rank() matched unrelated candidate %+v", outcome.Candidate)
	}
	if outcome.Reason != ReasonNoMatch {
		t.Errorf("Reason = %q, want %q", outcome.Reason, ReasonNoMatch)
	}
}

func TestRankPerfectCandidateAlwaysWins(t *testing.T) {
	track := Track{Title: "Paranoid Android", Artist: "Radiohead", Duration: 386}
	perfect := Candidate{Title: "Paranoid Android", Uploader: "Radiohead", Duration: 386, URL: "perfect"}
	decoys := []Candidate{
		{Title: "Paranoid Android Live", Uploader: "Radiohead", Duration: 390, URL: "live"},
		{Title: "Paranoid Android", Uploader: "RadioheadVEVO", Duration: 386, URL: "vevo"},
		{Title: "Paranoid Android Cover", Uploader: "Some Band", Duration: 386, URL: "cover"},
	}

	// The perfect candidate must be selected from any position within
	// the truncation window.
	for pos := 0; pos <= len(decoys); pos++ {
		candidates := make([]Candidate, 0, len(decoys)+1)
		candidates = append(candidates, decoys[:pos]...)
		candidates = append(candidates, perfect)
		candidates = append(candidates, decoys[pos:]...)

		outcome := Rank(track, candidates, DefaultConfig())
		if !outcome.Matched() {
			t.Fatalf("position %d: unmatched, reason %q", pos, outcome.Reason)
		}
		if outcome.Candidate.URL != "perfect" {
			t.Errorf("position %d: selected %q, want perfect candidate", pos, outcome.Candidate.URL)
		}
	}
}

func TestRankUnknownDurationNotRejected(t *testing.T) {
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}
	candidates := []Candidate{
		{Title: "Song A", Uploader: "Artist X", Duration: 0, URL: "unknown-duration"},
	}

	outcome := Rank(track, candidates, DefaultConfig())
	if !outcome.Matched() {
		t.Fatalf("candidate with unknown duration rejected: %q", outcome.Reason)
	}
}

func TestRankHigherCombinedScoreWins(t *testing.T) {
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}
	// Both pass the thresholds; the second has a closer uploader name.
	candidates := []Candidate{
		{Title: "Song A", Uploader: "Artist X Official", Duration: 201, URL: "weaker"},
		{Title: "Song A", Uploader: "Artist X", Duration: 201, URL: "stronger"},
	}

	outcome := Rank(track, candidates, DefaultConfig())
	if !outcome.Matched() {
		t.Fatalf("Rank() unmatched, reason %q", outcome.Reason)
	}
	if outcome.Candidate.URL != "stronger" {
		t.Errorf("selected %q, want the higher-scoring candidate", outcome.Candidate.URL)
	}
}

func TestRankTieBreaksByPosition(t *testing.T) {
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}
	// Identical candidates, so identical scores: the first seen wins.
	candidates := []Candidate{
		{Title: "Song A", Uploader: "Artist X", Duration: 205, URL: "first"},
		{Title: "Song A", Uploader: "Artist X", Duration: 200, URL: "second"},
	}

	outcome := Rank(track, candidates, DefaultConfig())
	if !outcome.Matched() {
		t.Fatalf("Rank() unmatched, reason %q", outcome.Reason)
	}
	// Never tie-broken by duration.
	if outcome.Candidate.URL != "first" {
		t.Errorf("selected %q, want the earliest candidate", outcome.Candidate.URL)
	}
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}
	candidates := []Candidate{
		{Title: "Wrong One", Uploader: "Nobody", Duration: 90, URL: "junk1"},
		{Title: "Wrong Two", Uploader: "Nobody", Duration: 91, URL: "junk2"},
		// Perfect match, but outside the truncation window.
		{Title: "Song A", Uploader: "Artist X", Duration: 200, URL: "late-perfect"},
	}
	cfg := DefaultConfig()
	cfg.MaxResults = 2

	outcome := Rank(track, candidates, cfg)
	if outcome.Matched() {
		t.Errorf("candidate beyond MaxResults was selected: %q", outcome.Candidate.URL)
	}
}

func TestScoreCandidate(t *testing.T) {
	cfg := DefaultConfig()
	track := Track{Title: "Song A", Artist: "Artist X", Duration: 200}

	tests := []struct {
		name         string
		candidate    Candidate
		wantAccepted bool
	}{
		{
			name:         "exact match accepted",
			candidate:    Candidate{Title: "Song A", Uploader: "Artist X", Duration: 200},
			wantAccepted: true,
		},
		{
			name:         "duration outside tolerance rejected",
			candidate:    Candidate{Title: "Song A", Uploader: "Artist X", Duration: 250},
			wantAccepted: false,
		},
		{
			name:         "unknown duration accepted",
			candidate:    Candidate{Title: "Song A", Uploader: "Artist X", Duration: 0},
			wantAccepted: true,
		},
		{
			name:         "title below threshold rejected",
			candidate:    Candidate{Title: "Different Thing", Uploader: "Artist X", Duration: 200},
			wantAccepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreCandidate(track, tt.candidate, cfg)
			if score.Accepted != tt.wantAccepted {
				t.Errorf("Accepted = %v, want %v (score %+v)", score.Accepted, tt.wantAccepted, score)
			}
		})
	}
}
