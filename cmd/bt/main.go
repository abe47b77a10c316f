package main

import (
	"os"

	"github.com/bnema/billion-tapper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
