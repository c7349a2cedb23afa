package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check [entryId]...",
		Short: "Check which entry ids already have a note in the deck",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCheck,
	}
	RootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	cfg := loadConfig()
	if cfg.DeckName == "" {
		exitErr("check", fmt.Errorf("no deck configured"))
	}

	client := permittedClient(cmd, cfg)

	// One outstanding duplicate check per entry; the checks are
	// independent and share no client-side state.
	exists := make([]bool, len(args))
	var wg sync.WaitGroup
	for i, id := range args {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			exists[i] = client.NoteExists(ctx, cfg.DeckName, id)
		}(i, id)
	}
	wg.Wait()

	for i, id := range args {
		if exists[i] {
			fmt.Printf("%s exists\n", id)
		} else {
			fmt.Printf("%s does not exist\n", id)
		}
	}
}
