// Package titles parses featured-artist credits out of song and video
// titles so that matching compares clean titles and complete artist
// lists.
package titles

import "strings"

// featMarkers are the credit markers recognized inside titles, checked
// in order.
var featMarkers = []string{" feat.", " ft.", "(feat.", "(ft."}

// ExtractFeatured splits a catalog song title into the clean title and
// any featured artists credited inside it. "Song (feat. A & B)" yields
// ("Song", ["A", "B"]). Titles without a credit marker are returned
// unchanged with no artists.
func ExtractFeatured(title string) (string, []string) {
	for _, marker := range featMarkers {
		idx := strings.Index(title, marker)
		if idx == -1 {
			continue
		}
		clean := strings.TrimSpace(title[:idx])
		credit := title[idx+len(marker):]
		return clean, splitArtists(credit)
	}
	return strings.TrimSpace(title), nil
}

// ParseVideoTitle interprets an "Artist - Title" style video title,
// pulling featured credits from either side into the artist list. The
// second return is false when the title does not follow that shape and
// could not be split.
func ParseVideoTitle(videoTitle string) (artists []string, title string, ok bool) {
	left, right, found := strings.Cut(videoTitle, " - ")
	if !found {
		return nil, "", false
	}

	mainArtist, leftFeatured := ExtractFeatured(left)
	title, rightFeatured := ExtractFeatured(right)

	artists = append(artists, mainArtist)
	artists = append(artists, leftFeatured...)
	artists = append(artists, rightFeatured...)
	return artists, title, true
}

// MergeArtists appends featured artists to the credited list, skipping
// names already present.
func MergeArtists(credited, featured []string) []string {
	merged := append([]string(nil), credited...)
	for _, name := range featured {
		seen := false
		for _, existing := range merged {
			if existing == name {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, name)
		}
	}
	return merged
}

// splitArtists breaks a featured-artist credit like "A, B" or "A & B"
// into individual names, trimming any closing parenthesis left over
// from "(feat. ...)" credits.
func splitArtists(credit string) []string {
	sep := "& "
	if strings.Contains(credit, ", ") {
		sep = ", "
	}

	parts := strings.Split(credit, sep)
	artists := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(strings.ReplaceAll(part, ")", ""))
		if name != "" {
			artists = append(artists, name)
		}
	}
	return artists
}
