package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "lookup [entryId]",
		Short: "Print an entry's definition and candidate sentences",
		Long:  "Resolves the id against the bundled datasets without contacting Anki.",
		Args:  cobra.ExactArgs(1),
		Run:   runLookup,
	})
}

func runLookup(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	matcher := newMatcher(cfg)

	m, ok := matcher.Match(args[0])
	if !ok {
		fmt.Println("not found")
		return
	}

	out := struct {
		ID        string     `json:"id"`
		Kanji     []string   `json:"kanji"`
		Kana      []string   `json:"kana"`
		Senses    []string   `json:"senses"`
		Sentences [][]string `json:"sentences"`
	}{
		ID:     m.Entry.ID,
		Kanji:  m.Entry.Kanji,
		Kana:   m.Entry.Kana,
		Senses: m.Entry.Senses,
	}
	for _, p := range m.Sentences {
		out.Sentences = append(out.Sentences, []string{p.Japanese, p.English})
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
