package main

import (
	"fmt"
	"os"

	"github.com/MuhammadAbdulBari/moon-phase/cmd"
	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitcode.ExitCode(err))
	}
}
