package spotify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"

	"trackmirror/internal/match"
	"trackmirror/internal/titles"
)

// FetchLikedTracks retrieves every track from the user's library as
// match.Track values. Progress is logged to stdout during fetch.
func (c *Client) FetchLikedTracks(ctx context.Context) ([]match.Track, error) {
	var tracks []match.Track

	// Fetch first page (limit 50 is max per request)
	page, err := c.api.CurrentUsersTracks(ctx, spotify.Limit(50))
	if err != nil {
		return nil, fmt.Errorf("fetching liked songs: %w", err)
	}

	for {
		for _, saved := range page.Tracks {
			tracks = append(tracks, convertTrack(saved))
		}

		fmt.Printf("Fetched %d tracks...\n", len(tracks))

		err = c.api.NextPage(ctx, page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetching next page: %w", err)
		}
	}

	fmt.Printf("Fetched %d tracks total.\n", len(tracks))
	return tracks, nil
}

// convertTrack converts a Spotify SavedTrack to a match.Track at the
// collaborator boundary. Featured-artist credits embedded in the song
// title ("Song (feat. X)") are moved into the artist list so matching
// compares a clean title against the complete credit.
func convertTrack(saved spotify.SavedTrack) match.Track {
	names := make([]string, len(saved.Artists))
	for i, a := range saved.Artists {
		names[i] = a.Name
	}

	title, featured := titles.ExtractFeatured(saved.Name)
	names = titles.MergeArtists(names, featured)

	return match.Track{
		ID:       saved.ID.String(),
		Title:    title,
		Artist:   strings.Join(names, ", "),
		Album:    saved.Album.Name,
		Year:     releaseYear(saved.Album.ReleaseDate),
		Duration: int(saved.Duration) / 1000,
	}
}

// releaseYear extracts the year from a Spotify release date, which may
// be "2021-08-23", "2021-08" or just "2021".
func releaseYear(releaseDate string) string {
	if len(releaseDate) >= 4 {
		return releaseDate[:4]
	}
	return ""
}
