package main

import (
	"os"

	"countdown/internal/cli"
)

func main() {
	if cli.NewRootCmd().Execute() != nil {
		os.Exit(1)
	}
}
