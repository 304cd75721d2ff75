package main

import (
	"os"

	"cryptouri/cmd/cryptouri/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
