// Package main is the entry point for the dd CLI client.
package main

import (
	"github.com/donaldgifford/deal-desk/cmd/dd/cmd"
)

func main() {
	cmd.Execute()
}
