package main

import (
	"os"

	"github.com/katalvlaran/evacroute/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
