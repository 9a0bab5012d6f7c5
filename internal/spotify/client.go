// Package spotify reads the user's saved tracks through the Spotify
// Web API and converts them into the catalog form the matcher consumes.
package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// Client exposes the slice of the Spotify Web API this tool needs.
type Client struct {
	api *spotify.Client
}

// New wraps an already authenticated API client.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// UserID returns the Spotify ID of the authenticated user.
func (c *Client) UserID(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching current user: %w", err)
	}
	return user.ID, nil
}
