// Package main is the entry point for the deal-desk server.
package main

import (
	"os"

	"github.com/donaldgifford/deal-desk/cmd/deal-desk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
