package main

import (
	"fmt"
	"os"

	"github.com/fsprime/fsprime/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
