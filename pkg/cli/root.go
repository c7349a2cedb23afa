// Package cli implements the jisho-to-anki CLI commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/LtSquigs/jisho-to-anki/pkg/ankiconnect"
	"github.com/LtSquigs/jisho-to-anki/pkg/audio"
	"github.com/LtSquigs/jisho-to-anki/pkg/config"
	"github.com/LtSquigs/jisho-to-anki/pkg/corpus"
	"github.com/LtSquigs/jisho-to-anki/pkg/dict"
	"github.com/LtSquigs/jisho-to-anki/pkg/match"
	"github.com/LtSquigs/jisho-to-anki/pkg/translate"
	"github.com/LtSquigs/jisho-to-anki/pkg/workflow"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "jisho-to-anki",
	Short: "Turn JMdict entries into Anki notes with example sentences",
	Long: "Resolves dictionary entry ids against a bundled jmdict-slim dataset, finds " +
		"example sentences containing the entry's written forms, and submits notes " +
		"to Anki via AnkiConnect using a configurable field mapping.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: $CONFIG_PATH or ./jisho-to-anki.yaml)")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	setupLogger(cfg.Log)
	return cfg
}

// setupLogger installs the default slog handler from config.
func setupLogger(cfg config.LogConfig) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newClient(cfg *config.Config) *ankiconnect.Client {
	return ankiconnect.NewClient(cfg.AnkiConnectURL, cfg.AnkiConnectAPIKey, cfg.RequestTimeout)
}

func newMatcher(cfg *config.Config) *match.Matcher {
	catalog, err := dict.Load(cfg.DictionaryPath)
	if err != nil {
		exitErr("load dictionary", err)
	}
	sentences, err := corpus.Load(cfg.SentencesPath)
	if err != nil {
		exitErr("load sentences", err)
	}
	slog.Debug("datasets loaded", "entries", catalog.Len(), "sentences", sentences.Len())
	return &match.Matcher{Dict: catalog, Corpus: sentences}
}

func newTranslator(cfg *config.Config) workflow.Translator {
	if !cfg.Translate.Enabled {
		return nil
	}
	cache, err := translate.LoadCache(cfg.Translate.CachePath)
	if err != nil {
		exitErr("load translation cache", err)
	}
	return &translate.Translator{Cache: cache, TargetLanguage: cfg.Translate.TargetLanguage}
}

func newAudio(cfg *config.Config) workflow.AudioFetcher {
	if !cfg.Audio.Enabled {
		return nil
	}
	var fetcher audio.Fetcher
	if strings.EqualFold(cfg.Audio.Provider, "azure") {
		fetcher = audio.NewAzureClient(cfg.Audio.AzureAPIKey)
	} else {
		fetcher = &audio.GCPClient{}
	}
	return &audio.Downloader{AudioDir: cfg.Audio.Dir, Fetcher: fetcher}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
