package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"trackmirror/internal/match"
)

// audioQuality is the MP3 bitrate requested from the yt-dlp
// postprocessor.
const audioQuality = "320K"

// Downloader retrieves matched candidates as MP3 files.
type Downloader struct {
	binary    string
	outputDir string
	logger    *slog.Logger
}

// NewDownloader creates a Downloader writing into outputDir, creating
// the directory if needed.
func NewDownloader(outputDir string, opts ...Option) (*Downloader, error) {
	// Options are shared with Client; apply them through a throwaway
	// client value.
	c := &Client{binary: DefaultBinary, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := exec.LookPath(c.binary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinaryNotFound, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Downloader{
		binary:    c.binary,
		outputDir: outputDir,
		logger:    c.logger,
	}, nil
}

// Download fetches the candidate's audio as MP3, places it at
// "<artist> - <title>.mp3" under the output directory and returns the
// final path. The transfer goes to a temp file first and is renamed
// into place only on success, so an interrupted run never leaves a
// partially written track behind. Existing files are never
// overwritten; a numeric suffix is appended instead.
func (d *Downloader) Download(ctx context.Context, track match.Track, candidate match.Candidate) (string, error) {
	tmp := filepath.Join(d.outputDir, "."+uuid.New().String()+".mp3")
	defer os.Remove(tmp)

	cmd := exec.CommandContext(ctx, d.binary,
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", audioQuality,
		"--format", "bestaudio/best",
		"--no-playlist",
		"--no-warnings",
		"--output", tmp,
		candidate.URL,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	d.logger.Debug("downloading", "url", candidate.URL, "tmp", tmp)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w: %s", err, firstLine(stderr.Bytes()))
	}

	dest := resolveCollision(filepath.Join(d.outputDir, trackFileName(track)))
	if err := os.Rename(tmp, dest); err != nil {
		return "", fmt.Errorf("moving download into place: %w", err)
	}

	d.logger.Info("downloaded", "path", dest)
	return dest, nil
}

// trackFileName builds the target file name for a track, stripping
// characters that are unsafe in file names.
func trackFileName(track match.Track) string {
	name := fmt.Sprintf("%s - %s.mp3", track.Artist, track.Title)
	replacer := strings.NewReplacer(":", "", "/", "-", "\\", "-", "\x00", "")
	return replacer.Replace(name)
}

// resolveCollision returns path unchanged when it is free, otherwise
// the first "name (N).ext" variant that does not exist yet.
func resolveCollision(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
