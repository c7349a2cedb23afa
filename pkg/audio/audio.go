package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LtSquigs/jisho-to-anki/pkg/hash"
	"golang.org/x/exp/slog"
)

// Fetcher synthesizes speech for a piece of text and returns mp3
// bytes. Implemented by the GCP and Azure clients.
type Fetcher interface {
	Fetch(ctx context.Context, text string) ([]byte, error)
}

// Downloader caches synthesized audio on disk, one mp3 per sentence
// keyed by its SHA-1, and hands out Anki sound tags referencing the
// cached files.
type Downloader struct {
	AudioDir string
	Fetcher  Fetcher
}

// SoundTag ensures audio for the sentence exists in the audio dir and
// returns the [sound:...] tag to append to the note field.
func (d *Downloader) SoundTag(ctx context.Context, sentence string) (string, error) {
	filename := hash.Sha1(sentence) + ".mp3"
	path := filepath.Join(d.AudioDir, filename)

	if _, err := os.Stat(path); err == nil {
		slog.Debug("audio file exists", "path", path)
		return soundTag(filename), nil
	}

	if err := os.MkdirAll(d.AudioDir, os.ModePerm); err != nil {
		return "", err
	}
	data, err := d.Fetcher.Fetch(ctx, sentence)
	if err != nil {
		return "", fmt.Errorf("fetch audio: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	slog.Debug("audio content written", "path", path)
	return soundTag(filename), nil
}

func soundTag(filename string) string {
	return "[sound:" + filename + "]"
}
