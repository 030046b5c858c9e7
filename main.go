package main

import (
	"os"

	"github.com/ermek/bilim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
