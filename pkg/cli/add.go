package cli

import (
	"fmt"

	"github.com/LtSquigs/jisho-to-anki/pkg/note"
	"github.com/LtSquigs/jisho-to-anki/pkg/workflow"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [entryId]...",
		Short: "Add notes for dictionary entry ids",
		Long: "Runs the full pipeline per id: resolve against the dictionary, find example " +
			"sentences, check the deck for an existing note, then prompt for the " +
			"kanji/reading/meaning/sentence choices and submit the note.",
		Args: cobra.MinimumNArgs(1),
		Run:  runAdd,
	}
	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	cfg := loadConfig()
	if !cfg.Configured() {
		// Not configured, get out of here.
		slog.Debug("pipeline not configured, nothing to do")
		return
	}

	client := permittedClient(cmd, cfg)
	matcher := newMatcher(cfg)
	translator := newTranslator(cfg)
	audioFetcher := newAudio(cfg)

	for _, id := range args {
		w := &workflow.Workflow{
			EntryID:    id,
			Matcher:    matcher,
			Store:      client,
			UI:         &terminalUI{id: id},
			Mapping:    cfg.Mapping(),
			Deck:       cfg.DeckName,
			Model:      cfg.ModelName,
			Tags:       cfg.TagList(),
			Translator: translator,
			Audio:      audioFetcher,
		}

		switch w.Start(ctx) {
		case workflow.StateUnresolved:
			fmt.Printf("[%s] not in dictionary, skipping\n", id)
			continue
		case workflow.StateAdded:
			continue
		}

		sel := selectChoices(w)
		for {
			if err := w.Submit(ctx, sel); err == nil {
				break
			}
			if !confirm("retry?") {
				break
			}
		}
	}
}

// selectChoices prompts for one option per semantic slot, mirroring
// the add-word form of the extension.
func selectChoices(w *workflow.Workflow) note.Selection {
	m := w.Matched()
	sel := note.Selection{
		Kanji: chooseOption("Kanji", m.Entry.Kanji),
		Kana:  chooseOption("Reading", m.Entry.Kana),
		Sense: chooseOption("Meaning", m.Entry.Senses),
	}

	sentences := make([]string, len(m.Sentences))
	for i, p := range m.Sentences {
		sentences[i] = fmt.Sprintf("%s %s", p.Japanese, p.English)
	}
	if i := chooseIndex("Example Sentence", sentences); i >= 0 {
		sel.SentenceJP = m.Sentences[i].Japanese
		sel.SentenceEN = m.Sentences[i].English
	}
	return sel
}
