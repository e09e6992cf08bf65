package main

// This is a syntax validator for a small Python-like language written in Go.

import (
	"os"

	"github.com/letung3105/pyvalid/cmd/pyvalid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
