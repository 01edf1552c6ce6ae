package main

import (
	"os"

	"github.com/miniyarov/maymun-lang/cmd/maymun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
