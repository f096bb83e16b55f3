package main

import (
	"os"

	"hypnosis-landing/cmd/landing/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
