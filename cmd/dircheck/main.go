package main

import (
	"os"

	"github.com/vbp1/dirfixture/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
