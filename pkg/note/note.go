package note

import (
	"github.com/LtSquigs/jisho-to-anki/pkg/ankiconnect"
)

// TrackingField is the note field that always carries the dictionary
// entry id. It is the sole de-duplication key against the collection,
// regardless of which forms the user picked.
const TrackingField = "Notes"

// Tag marks every note created by this tool.
const Tag = "jisho2anki"

// FieldMapping maps the semantic slots onto note-type field names. An
// empty string leaves the slot unmapped; partial configurations are
// valid, unmapped slots are simply not written.
type FieldMapping struct {
	KanjiField        string
	ReadingField      string
	MeaningField      string
	ExampleSentenceJp string
	ExampleSentenceEn string
}

// Empty reports whether no semantic slot is mapped at all.
func (m FieldMapping) Empty() bool {
	return m.KanjiField == "" &&
		m.ReadingField == "" &&
		m.MeaningField == "" &&
		m.ExampleSentenceJp == "" &&
		m.ExampleSentenceEn == ""
}

// Selection is the user's pick among the candidate kanji, kana, sense
// and example-sentence options of one matched entry.
type Selection struct {
	Kanji      string
	Kana       string
	Sense      string
	SentenceJP string
	SentenceEN string
}

// BuildNote maps a selection onto an addNote payload. Kana-only words
// have no kanji form; the kana choice then fills the kanji slot and
// the reading slot stays blank, so the reading is not doubled. The
// tracking field and tag are always written.
func BuildNote(mapping FieldMapping, sel Selection, entryID, deck, model string, extraTags []string) ankiconnect.Note {
	kanji := sel.Kanji
	kana := sel.Kana
	if kanji == "" {
		kanji = kana
		kana = ""
	}

	fields := map[string]string{}
	if mapping.KanjiField != "" {
		fields[mapping.KanjiField] = kanji
	}
	if mapping.ReadingField != "" {
		fields[mapping.ReadingField] = kana
	}
	if mapping.MeaningField != "" {
		fields[mapping.MeaningField] = sel.Sense
	}
	if mapping.ExampleSentenceJp != "" {
		fields[mapping.ExampleSentenceJp] = sel.SentenceJP
	}
	if mapping.ExampleSentenceEn != "" {
		fields[mapping.ExampleSentenceEn] = sel.SentenceEN
	}
	fields[TrackingField] = entryID

	tags := append([]string{Tag}, extraTags...)

	return ankiconnect.Note{
		DeckName:  deck,
		ModelName: model,
		Fields:    fields,
		Tags:      tags,
		Options:   ankiconnect.NoteOptions{AllowDuplicate: false},
	}
}
