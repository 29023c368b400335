// Package main provides the CLI for the irlight IR evaluation engine.
package main

import (
	"fmt"
	"os"

	"github.com/revlift-labs/irlight/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
