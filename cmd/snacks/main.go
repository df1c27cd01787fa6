package main

import (
	"os"

	"github.com/msto63/snacks/cmd/snacks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
