package main

import (
	"os"

	"time-tracker/client/cmd"
)

func main() {
	if err := cmd.NewRootCommand(cmd.DefaultDeps()).Execute(); err != nil {
		os.Exit(1)
	}
}
