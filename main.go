package main

import (
	"os"

	"github.com/nuxius-labs/init-nuxius/internal/cli"
)

// version, commit, and date are overridden via ldflags at build time.
var (
	version = "1.0.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
