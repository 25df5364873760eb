package main

import (
	"os"

	"github.com/srtran/srtran/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
