// Package main provides the custdb command.
package main

import (
	"os"

	"github.com/leapstack-labs/custdb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
