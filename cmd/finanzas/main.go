package main

import (
	"os"

	"github.com/yadira-sys/finanzas-personales/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
