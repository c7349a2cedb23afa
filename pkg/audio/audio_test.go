package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LtSquigs/jisho-to-anki/pkg/hash"
)

type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, text string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func TestSoundTag(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")
	fetcher := &fakeFetcher{data: []byte("mp3bytes")}
	d := &Downloader{AudioDir: dir, Fetcher: fetcher}

	tag, err := d.SoundTag(context.Background(), "私は食べる")
	if err != nil {
		t.Fatalf("sound tag: %v", err)
	}
	filename := hash.Sha1("私は食べる") + ".mp3"
	if want := "[sound:" + filename + "]"; tag != want {
		t.Errorf("tag = %q, want %q", tag, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(data) != "mp3bytes" {
		t.Errorf("unexpected file content: %q", data)
	}

	// second call hits the cache
	if _, err := d.SoundTag(context.Background(), "私は食べる"); err != nil {
		t.Fatalf("cached sound tag: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("expected 1 fetch, got %d", fetcher.calls)
	}
}

func TestSoundTagFetchError(t *testing.T) {
	d := &Downloader{
		AudioDir: t.TempDir(),
		Fetcher:  &fakeFetcher{err: errors.New("quota exceeded")},
	}
	if _, err := d.SoundTag(context.Background(), "私は食べる"); err == nil {
		t.Error("expected error")
	}
}
