package main

import (
	"fmt"
	"os"

	"trip-planner/cmd/tripctl/cmd"
	"trip-planner/internal/config"
)

func main() {
	// Missing .env is fine, credentials may come from real env vars
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config warning: %v\n", err)
	}

	cmd.Execute()
}
