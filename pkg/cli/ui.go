package cli

import (
	"fmt"

	"github.com/LtSquigs/jisho-to-anki/pkg/match"
)

// terminalUI renders one entry's affordance on stdout, the CLI
// equivalent of the loading/add/added pills on the lookup page.
type terminalUI struct {
	id string
}

func (u *terminalUI) ShowLoading() {
	fmt.Printf("[%s] checking collection...\n", u.id)
}

func (u *terminalUI) ShowAddable(m match.MatchedEntry) {
	fmt.Printf("[%s] not in collection, %d example sentence(s) found\n", u.id, len(m.Sentences))
}

func (u *terminalUI) ShowAdded() {
	fmt.Printf("[%s] added\n", u.id)
}

func (u *terminalUI) ShowFailed(err error) {
	fmt.Printf("[%s] failed: %v\n", u.id, err)
}
