package main

import (
	"os"

	"github.com/agentx-labs/nukit/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.ExecutePluginInit(version, commit, date); err != nil {
		os.Exit(1)
	}
}
