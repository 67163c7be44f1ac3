package main

import (
	"os"

	"github.com/wonny/momentum/cmd/momentum/commands"
)

// main is the entry point for the momentum CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
