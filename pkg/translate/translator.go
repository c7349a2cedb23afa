package translate

import (
	"context"
	"fmt"
	"strings"

	google_translate "cloud.google.com/go/translate"
	"github.com/LtSquigs/jisho-to-anki/pkg/corpus"
	"golang.org/x/exp/slog"
	"golang.org/x/text/language"
)

// Translator fills the missing English side of sentence pairs via
// Google Translate, caching results on disk so a sentence is only
// ever translated once.
type Translator struct {
	Cache          *Cache
	TargetLanguage string
}

// Fill returns the pairs with empty English sides translated. A
// failed translation leaves the pair untouched; the note can still be
// created without it.
func (t *Translator) Fill(ctx context.Context, pairs []corpus.Pair) []corpus.Pair {
	var updated bool
	for i, pair := range pairs {
		if pair.English != "" {
			continue
		}
		if cached, ok := t.Cache.Lookup(pair.Japanese); ok {
			pairs[i].English = cached
			continue
		}
		translation, err := Translate(ctx, t.TargetLanguage, pair.Japanese)
		if err != nil {
			slog.Warn("translate sentence", "sentence", pair.Japanese, "error", err)
			continue
		}
		pairs[i].English = translation
		t.Cache.Update(pair.Japanese, translation)
		updated = true
	}
	if updated {
		if err := t.Cache.Write(); err != nil {
			slog.Warn("write translation cache", "error", err)
		}
	}
	return pairs
}

func Translate(ctx context.Context, targetLanguage, text string) (string, error) {
	lang, err := language.Parse(targetLanguage)
	if err != nil {
		return "", fmt.Errorf("language.Parse: %v", err)
	}

	client, err := google_translate.NewClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	resp, err := client.Translate(ctx, []string{text}, lang, nil)
	if err != nil {
		return "", fmt.Errorf("translate: %v", err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("translate returned empty response to text: %s", text)
	}
	trans := resp[0].Text
	trans = strings.ReplaceAll(trans, "&#39;", "'")
	return trans, nil
}
