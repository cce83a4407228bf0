package main

import (
	"os"

	"github.com/maxdz-gmbh/mdz-ansi-dyn/cmd/ansistr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
