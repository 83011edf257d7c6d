package main

import (
	"os"

	"github.com/njlr/leptonica/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
