package cli

import (
	"fmt"

	"github.com/LtSquigs/jisho-to-anki/pkg/ankiconnect"
	"github.com/LtSquigs/jisho-to-anki/pkg/config"
	"github.com/spf13/cobra"
)

// Schema discovery commands, the CLI counterpart of the options-page
// selectors. An unreachable Anki degrades to empty output.

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "decks",
		Short: "List the decks of the collection",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			client := connectedClient(cmd)
			printLines(client.DeckNames(cmd.Context()))
		},
	})
	RootCmd.AddCommand(&cobra.Command{
		Use:   "models",
		Short: "List the note types of the collection",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			client := connectedClient(cmd)
			printLines(client.ModelNames(cmd.Context()))
		},
	})
	RootCmd.AddCommand(&cobra.Command{
		Use:   "fields [model]",
		Short: "List the fields of a note type",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := connectedClient(cmd)
			printLines(client.ModelFieldNames(cmd.Context(), args[0]))
		},
	})
}

// connectedClient builds the client and runs the permission
// handshake, which must precede any other action.
func connectedClient(cmd *cobra.Command) *ankiconnect.Client {
	cfg := loadConfig()
	return permittedClient(cmd, cfg)
}

func permittedClient(cmd *cobra.Command, cfg *config.Config) *ankiconnect.Client {
	client := newClient(cfg)
	granted, err := client.CheckPermission(cmd.Context())
	if err != nil {
		exitErr("anki-connect permission", err)
	}
	if !granted {
		exitErr("anki-connect permission", fmt.Errorf("denied by %s", cfg.AnkiConnectURL))
	}
	return client
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
