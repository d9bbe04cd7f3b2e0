// Package main is the entry point for the saas-cost CLI.
package main

import (
	"os"

	"saas-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
