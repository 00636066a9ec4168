package main

import (
	"os"

	"github.com/achrecon-dev/achrecon/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
