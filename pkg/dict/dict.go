package dict

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is a single headword from the bundled jmdict-slim dataset.
// Entries are immutable after load; the ID is the key used to
// de-duplicate notes against the Anki collection.
type Entry struct {
	ID     string   `json:"-"`
	Kanji  []string `json:"kanji"`
	Kana   []string `json:"kana"`
	Senses []string `json:"senses"`
}

// Forms returns the kanji and kana writings of the entry, in that
// order. These are the literal substrings searched for in the
// sentence corpus.
func (e *Entry) Forms() []string {
	forms := make([]string, 0, len(e.Kanji)+len(e.Kana))
	forms = append(forms, e.Kanji...)
	forms = append(forms, e.Kana...)
	return forms
}

// Catalog holds the whole dictionary dataset indexed by entry id.
type Catalog struct {
	entries map[string]*Entry
}

// Load reads a jmdict-slim file, a JSON object keyed by entry id.
// The dataset is small enough to keep fully in memory.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dictionary file: %w", err)
	}
	return Parse(b)
}

// Parse builds a Catalog from raw jmdict-slim JSON.
func Parse(b []byte) (*Catalog, error) {
	var raw map[string]*Entry
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not unmarshal dictionary: %w", err)
	}
	for id, e := range raw {
		e.ID = id
	}
	return &Catalog{entries: raw}, nil
}

// Resolve looks up an entry by id. A missing id is not an error,
// callers skip the element.
func (c *Catalog) Resolve(id string) (*Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Len reports the number of loaded entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
