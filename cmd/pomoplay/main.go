package main

import (
	"os"

	"pomoplay/internal/adapter/primary/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
