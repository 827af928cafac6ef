package main

import (
	"os"

	"github.com/cobolimport/flatfileimport/cmd/flatfileimport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
