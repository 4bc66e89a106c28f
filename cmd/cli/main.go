// Package main - CLI entry point
package main

import (
	"os"

	"github.com/toyiyo/nimble-pnl-sub007/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
