package main

import (
	"os"

	"github.com/ledgerflow-dev/ledgerflow/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
