package main

import (
	"os"

	"github.com/efpwealth/platform/cmd/efp/commands"
)

// main is the entry point for the EFP Wealth CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
