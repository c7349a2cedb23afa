package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jisho-to-anki.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
anki_connect_url: "192.168.0.2:8765"
deck_name: "Japanese"
model_name: "Japanese Vocab"
kanji_field: "Front"
reading_field: "Reading"
tags: "jisho, vocab"
request_timeout: "5s"
translate:
  enabled: true
  target_language: "en-GB"
`

func TestLoadFromFile(t *testing.T) {
	path := writeYAML(t, validYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnkiConnectURL != "192.168.0.2:8765" {
		t.Errorf("unexpected url: %s", cfg.AnkiConnectURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.RequestTimeout)
	}
	if cfg.Translate.TargetLanguage != "en-GB" {
		t.Errorf("unexpected target language: %s", cfg.Translate.TargetLanguage)
	}
	if !cfg.Configured() {
		t.Error("expected Configured() = true")
	}
}

func TestLoadDefaults(t *testing.T) {
	// no file, no env: defaults only
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for explicitly missing file")
	}

	t.Setenv("CONFIG_PATH", "")
	cfg, err = loadEnvOnly(t)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnkiConnectURL != "localhost:8765" {
		t.Errorf("unexpected default url: %s", cfg.AnkiConnectURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.RequestTimeout)
	}
	if cfg.Configured() {
		t.Error("expected Configured() = false without deck/model/fields")
	}
}

func loadEnvOnly(t *testing.T) (*Config, error) {
	t.Helper()
	// run from a directory without a fallback config file
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return Load("")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeYAML(t, validYAML)
	t.Setenv("DECK_NAME", "Mining")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DeckName != "Mining" {
		t.Errorf("expected env to win, got %s", cfg.DeckName)
	}
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{
			name: "complete",
			cfg:  Config{AnkiConnectURL: "localhost:8765", DeckName: "d", ModelName: "m", MeaningField: "Meaning"},
			want: true,
		},
		{
			name: "no deck",
			cfg:  Config{AnkiConnectURL: "localhost:8765", ModelName: "m", MeaningField: "Meaning"},
		},
		{
			name: "no model",
			cfg:  Config{AnkiConnectURL: "localhost:8765", DeckName: "d", MeaningField: "Meaning"},
		},
		{
			name: "no semantic slot mapped",
			cfg:  Config{AnkiConnectURL: "localhost:8765", DeckName: "d", ModelName: "m"},
		},
		{
			name: "single sentence slot is enough",
			cfg:  Config{AnkiConnectURL: "localhost:8765", DeckName: "d", ModelName: "m", ExampleSentenceEn: "SentenceEN"},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagList(t *testing.T) {
	cfg := Config{Tags: "jisho, vocab,,n5 "}
	got := cfg.TagList()
	want := []string{"jisho", "vocab", "n5"}
	if len(got) != len(want) {
		t.Fatalf("TagList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TagList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
