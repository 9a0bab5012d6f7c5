// Command trackmirror downloads a user's Spotify liked tracks by
// matching each one against YouTube search results and fetching the
// best match through yt-dlp.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"trackmirror/internal/auth"
	"trackmirror/internal/batch"
	"trackmirror/internal/config"
	"trackmirror/internal/match"
	"trackmirror/internal/report"
	"trackmirror/internal/spotify"
	"trackmirror/internal/store"
	"trackmirror/internal/tagging"
	"trackmirror/internal/ytdlp"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run() (int, error) {
	// Invalid configuration is fatal before any track is touched.
	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	authenticator, err := auth.New(cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return 0, fmt.Errorf("creating authenticator: %w", err)
	}
	api, err := authenticator.Authenticate(ctx)
	if err != nil {
		return 0, fmt.Errorf("authenticating with Spotify: %w", err)
	}

	client := spotify.New(api)
	if userID, err := client.UserID(ctx); err == nil {
		fmt.Printf("Authenticated as %s.\n", userID)
	}
	tracks, err := client.FetchLikedTracks(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching liked tracks: %w", err)
	}
	fmt.Printf("Detected %d liked songs from Spotify.\n", len(tracks))

	history, err := store.Open()
	if err != nil {
		return 0, fmt.Errorf("opening download history: %w", err)
	}
	defer history.Close()

	pending, err := filterDownloaded(ctx, history, tracks)
	if err != nil {
		return 0, err
	}
	if skipped := len(tracks) - len(pending); skipped > 0 {
		fmt.Printf("Skipping %d already downloaded tracks.\n", skipped)
	}
	if len(pending) == 0 {
		fmt.Println("Nothing to do.")
		return 0, nil
	}

	searcher, err := ytdlp.NewClient(cfg.Match.MaxResults, ytdlp.WithLogger(logger))
	if err != nil {
		return 0, err
	}
	downloader, err := ytdlp.NewDownloader(cfg.OutputDir, ytdlp.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	download := func(ctx context.Context, track match.Track, candidate match.Candidate) error {
		dest, err := downloader.Download(ctx, track, candidate)
		if err != nil {
			return err
		}
		if err := tagging.Apply(dest, track); err != nil {
			logger.Warn("tagging failed", "path", dest, "error", err)
		}
		if err := history.Record(ctx, track.ID, track.Title, track.Artist, dest); err != nil {
			logger.Warn("recording history failed", "track", track.ID, "error", err)
		}
		return nil
	}

	coordinator := batch.New(searcher.Search, download, cfg.Match,
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger))

	result := coordinator.Run(ctx, pending)

	fmt.Print(report.Render(result))
	fmt.Printf("Output directory: %s\n", cfg.OutputDir)

	if !result.Success() {
		return 1, nil
	}
	return 0, nil
}

// filterDownloaded drops tracks already present in the history.
func filterDownloaded(ctx context.Context, history *store.Store, tracks []match.Track) ([]match.Track, error) {
	pending := make([]match.Track, 0, len(tracks))
	for _, track := range tracks {
		seen, err := history.Contains(ctx, track.ID)
		if err != nil {
			return nil, fmt.Errorf("checking download history: %w", err)
		}
		if !seen {
			pending = append(pending, track)
		}
	}
	return pending, nil
}
