package main

import (
	"os"

	"github.com/msto63/boolex/cmd/boolex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
