package main

import (
	"os"

	"github.com/namecheck-ai/namecheck/internal/adapters/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cli.NewOutput().PrintError("%v", err)
		os.Exit(1)
	}
}
