package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/LtSquigs/jisho-to-anki/pkg/ankiconnect"
	"github.com/LtSquigs/jisho-to-anki/pkg/corpus"
	"github.com/LtSquigs/jisho-to-anki/pkg/match"
	"github.com/LtSquigs/jisho-to-anki/pkg/note"
	"golang.org/x/exp/slog"
)

// State of a single entry's add-to-Anki affordance.
type State int

const (
	StateUnresolved State = iota
	StateLoading
	StateAddable
	StateSubmitting
	StateAdded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateLoading:
		return "loading"
	case StateAddable:
		return "addable"
	case StateSubmitting:
		return "submitting"
	case StateAdded:
		return "added"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// CardStore is the slice of the AnkiConnect client a workflow drives.
type CardStore interface {
	NoteExists(ctx context.Context, deck, entryID string) bool
	AddNote(ctx context.Context, n ankiconnect.Note) error
}

// UIProjection renders the per-entry affordance. The concrete
// rendering lives outside the core; the CLI provides a terminal
// projection.
type UIProjection interface {
	ShowLoading()
	ShowAddable(m match.MatchedEntry)
	ShowAdded()
	ShowFailed(err error)
}

// Translator fills missing English sides of candidate sentences
// before they are presented. Optional.
type Translator interface {
	Fill(ctx context.Context, pairs []corpus.Pair) []corpus.Pair
}

// AudioFetcher fetches audio for the chosen example sentence and
// returns the Anki sound tag to append to it. Optional.
type AudioFetcher interface {
	SoundTag(ctx context.Context, sentence string) (string, error)
}

// Workflow drives one entry id from resolution through duplicate
// check to note submission. Workflows are independent across entries;
// the only shared collaborators are the read-only catalog and corpus
// and the remote store itself.
type Workflow struct {
	EntryID string
	Matcher *match.Matcher
	Store   CardStore
	UI      UIProjection
	Mapping note.FieldMapping
	Deck    string
	Model   string
	Tags    []string

	Translator Translator
	Audio      AudioFetcher

	mu      sync.Mutex
	state   State
	matched match.MatchedEntry
}

// State returns the current state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Matched returns the resolved entry and its candidate sentences.
// Valid after Start reported StateAddable or StateAdded.
func (w *Workflow) Matched() match.MatchedEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.matched
}

// Start resolves the entry and performs the duplicate check. An
// unresolvable id leaves the workflow in StateUnresolved, which means
// "skip this element". A failed duplicate check counts as "no note
// found" so the user is never blocked by a flaky connection.
func (w *Workflow) Start(ctx context.Context) State {
	w.mu.Lock()
	if w.state != StateUnresolved {
		w.mu.Unlock()
		return w.state
	}
	w.mu.Unlock()

	matched, ok := w.Matcher.Match(w.EntryID)
	if !ok {
		slog.Debug("entry not in dictionary", "id", w.EntryID)
		return StateUnresolved
	}
	if w.Translator != nil {
		matched.Sentences = w.Translator.Fill(ctx, matched.Sentences)
	}

	w.setMatched(matched)
	w.setState(StateLoading)
	w.UI.ShowLoading()

	if w.Store.NoteExists(ctx, w.Deck, w.EntryID) {
		w.setState(StateAdded)
		w.UI.ShowAdded()
		return StateAdded
	}

	w.setState(StateAddable)
	w.UI.ShowAddable(matched)
	return StateAddable
}

// Submit builds the note payload from the user's selection and sends
// it to the store. The submission must resolve before the affordance
// changes: success lands in StateAdded, failure in StateFailed, from
// which Submit may be called again for a manual retry. There is no
// automatic retry.
func (w *Workflow) Submit(ctx context.Context, sel note.Selection) error {
	w.mu.Lock()
	if w.state != StateAddable && w.state != StateFailed {
		state := w.state
		w.mu.Unlock()
		return fmt.Errorf("cannot submit entry %s in state %s", w.EntryID, state)
	}
	w.state = StateSubmitting
	w.mu.Unlock()

	n := note.BuildNote(w.Mapping, sel, w.EntryID, w.Deck, w.Model, w.Tags)

	if w.Audio != nil && w.Mapping.ExampleSentenceJp != "" && sel.SentenceJP != "" {
		tag, err := w.Audio.SoundTag(ctx, sel.SentenceJP)
		if err != nil {
			slog.Warn("fetch sentence audio", "id", w.EntryID, "error", err)
		} else {
			n.Fields[w.Mapping.ExampleSentenceJp] += tag
		}
	}

	if err := w.Store.AddNote(ctx, n); err != nil {
		w.setState(StateFailed)
		w.UI.ShowFailed(err)
		return err
	}

	w.setState(StateAdded)
	w.UI.ShowAdded()
	slog.Info("note added", "id", w.EntryID, "deck", w.Deck)
	return nil
}

func (w *Workflow) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

func (w *Workflow) setMatched(m match.MatchedEntry) {
	w.mu.Lock()
	w.matched = m
	w.mu.Unlock()
}
