package main

import (
	"os"
)

var version = "v0.1.0"

func main() {
	if err := newRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
