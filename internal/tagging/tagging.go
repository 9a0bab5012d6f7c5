// Package tagging writes ID3v2 metadata onto downloaded MP3 files so
// players show catalog metadata instead of whatever the upload carried.
package tagging

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"

	"trackmirror/internal/match"
)

// Apply writes ID3v2.3 title, artist, album and year frames from the
// catalog track onto the MP3 at path. Empty fields are left unset.
func Apply(path string, track match.Track) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening id3 tag: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(3)
	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artist)
	if track.Album != "" {
		tag.SetAlbum(track.Album)
	}
	if track.Year != "" {
		tag.SetYear(track.Year)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("saving id3 tag: %w", err)
	}
	return nil
}
