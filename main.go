package main

import (
	"os"

	"github.com/jcamilor/cv-ranker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
