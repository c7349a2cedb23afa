package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LtSquigs/jisho-to-anki/pkg/note"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the flat persisted configuration of the pipeline. All
// field-mapping keys are optional; the pipeline only starts when
// Configured reports true. Values come from a YAML file overridden by
// environment variables.
type Config struct {
	AnkiConnectURL    string `yaml:"anki_connect_url"     env:"ANKI_CONNECT_URL"     env-default:"localhost:8765"`
	AnkiConnectAPIKey string `yaml:"anki_connect_api_key" env:"ANKI_CONNECT_API_KEY"`
	DeckName          string `yaml:"deck_name"            env:"DECK_NAME"`
	ModelName         string `yaml:"model_name"           env:"MODEL_NAME"`

	KanjiField        string `yaml:"kanji_field"         env:"KANJI_FIELD"`
	ReadingField      string `yaml:"reading_field"       env:"READING_FIELD"`
	MeaningField      string `yaml:"meaning_field"       env:"MEANING_FIELD"`
	ExampleSentenceJp string `yaml:"example_sentence_jp" env:"EXAMPLE_SENTENCE_JP"`
	ExampleSentenceEn string `yaml:"example_sentence_en" env:"EXAMPLE_SENTENCE_EN"`

	DictionaryPath string `yaml:"dictionary_path" env:"DICTIONARY_PATH" env-default:"data/jmdict-slim.json"`
	SentencesPath  string `yaml:"sentences_path"  env:"SENTENCES_PATH"  env-default:"data/sentences.json"`

	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"10s"`

	// Tags is a comma separated list added to every note next to the
	// fixed jisho2anki tag.
	Tags string `yaml:"tags" env:"TAGS"`

	Log       LogConfig       `yaml:"log"`
	Translate TranslateConfig `yaml:"translate"`
	Audio     AudioConfig     `yaml:"audio"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// TranslateConfig enables the Google Translate fallback for corpus
// pairs that ship without an English side.
type TranslateConfig struct {
	Enabled        bool   `yaml:"enabled"         env:"TRANSLATE_ENABLED"  env-default:"false"`
	CachePath      string `yaml:"cache_path"      env:"TRANSLATE_CACHE"    env-default:"data/translations.yaml"`
	TargetLanguage string `yaml:"target_language" env:"TRANSLATE_LANGUAGE" env-default:"en-US"`
}

// AudioConfig enables text-to-speech audio for chosen example
// sentences.
type AudioConfig struct {
	Enabled bool   `yaml:"enabled" env:"AUDIO_ENABLED" env-default:"false"`
	Dir     string `yaml:"dir"     env:"AUDIO_DIR"     env-default:"data/audio"`
	// Provider selects the text-to-speech backend, gcp or azure.
	Provider    string `yaml:"provider"      env:"AUDIO_PROVIDER" env-default:"gcp"`
	AzureAPIKey string `yaml:"azure_api_key" env:"AZURE_API_KEY"`
}

// Load reads configuration from a YAML file and environment
// variables, ENV taking priority. An empty path falls back to
// CONFIG_PATH and then ./jisho-to-anki.yaml; a missing fallback file
// is fine, configuration then comes from ENV and defaults only.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if !explicit {
		path = "./jisho-to-anki.yaml"
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}

// Mapping derives the immutable semantic-slot mapping passed into the
// pipeline. No component mutates it after startup.
func (c *Config) Mapping() note.FieldMapping {
	return note.FieldMapping{
		KanjiField:        c.KanjiField,
		ReadingField:      c.ReadingField,
		MeaningField:      c.MeaningField,
		ExampleSentenceJp: c.ExampleSentenceJp,
		ExampleSentenceEn: c.ExampleSentenceEn,
	}
}

// Configured reports whether the pipeline may start: endpoint, deck
// and model set and at least one semantic slot mapped. Checked once
// at startup; an unconfigured pipeline is a silent no-op, not an
// error.
func (c *Config) Configured() bool {
	if c.AnkiConnectURL == "" || c.DeckName == "" || c.ModelName == "" {
		return false
	}
	return !c.Mapping().Empty()
}

// TagList splits the configured extra tags.
func (c *Config) TagList() []string {
	if c.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
