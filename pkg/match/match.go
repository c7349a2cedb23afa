package match

import (
	"github.com/LtSquigs/jisho-to-anki/pkg/corpus"
	"github.com/LtSquigs/jisho-to-anki/pkg/dict"
)

// MatchedEntry is a resolved dictionary entry together with the
// example sentences found for its written forms. Built fresh per
// lookup and never cached.
type MatchedEntry struct {
	Entry     *dict.Entry
	Sentences []corpus.Pair
}

// Matcher composes the dictionary catalog and the sentence corpus.
// Both are read-only after load, so a Matcher is safe for concurrent
// use.
type Matcher struct {
	Dict   *dict.Catalog
	Corpus *corpus.Corpus
}

// Match resolves an entry id and collects candidate sentences
// containing any of its kanji or kana forms. A missing id is not an
// error; the caller skips the element.
func (m *Matcher) Match(id string) (MatchedEntry, bool) {
	entry, ok := m.Dict.Resolve(id)
	if !ok {
		return MatchedEntry{}, false
	}
	return MatchedEntry{
		Entry:     entry,
		Sentences: m.Corpus.FindContaining(entry.Forms()),
	}, true
}
