package ytdlp

import (
	"encoding/json"
	"fmt"
	"strings"

	"trackmirror/internal/match"
	"trackmirror/internal/titles"
)

// searchResult is the yt-dlp -J playlist envelope for a ytsearch query.
type searchResult struct {
	Entries []searchEntry `json:"entries"`
}

// searchEntry is one video in a search result. Field availability
// varies by upload: music uploads carry artist/track metadata, plain
// uploads only a title and channel.
type searchEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Track    string  `json:"track"`
	Channel  string  `json:"channel"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	URL      string  `json:"url"`
	Webpage  string  `json:"webpage_url"`
}

// parseSearchResult decodes yt-dlp search output into candidates,
// preserving the reported order. Entries without an identifier are
// skipped.
func parseSearchResult(data []byte) ([]match.Candidate, error) {
	var result searchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing yt-dlp output: %w", err)
	}

	candidates := make([]match.Candidate, 0, len(result.Entries))
	for _, entry := range result.Entries {
		if entry.ID == "" {
			continue
		}
		candidates = append(candidates, newCandidate(entry))
	}
	return candidates, nil
}

// newCandidate converts a raw search entry into a match.Candidate.
// This is the only place the yt-dlp response shape is interpreted:
// uploads with proper music metadata use it directly, while plain
// "Artist - Title" videos are split so the uploader field carries the
// most plausible artist credit.
func newCandidate(entry searchEntry) match.Candidate {
	title := entry.Title
	if entry.Track != "" {
		title = entry.Track
	}

	uploader := entry.Artist
	if uploader == "" {
		if artists, parsedTitle, ok := titles.ParseVideoTitle(entry.Title); ok {
			uploader = strings.Join(artists, ", ")
			if entry.Track == "" {
				title = parsedTitle
			}
		}
	}
	if uploader == "" {
		uploader = entry.Channel
	}
	if uploader == "" {
		uploader = entry.Uploader
	}

	url := entry.Webpage
	if url == "" {
		url = entry.URL
	}
	if url == "" {
		url = "https://www.youtube.com/watch?v=" + entry.ID
	}

	return match.Candidate{
		ID:       entry.ID,
		Title:    title,
		Uploader: uploader,
		Duration: int(entry.Duration),
		URL:      url,
	}
}
