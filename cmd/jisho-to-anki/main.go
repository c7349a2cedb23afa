package main

import (
	"os"

	"github.com/LtSquigs/jisho-to-anki/pkg/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
