package main

import (
	"os"

	"github.com/RHFBAH/donation-reconciler/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
