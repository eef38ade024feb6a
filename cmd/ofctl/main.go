// Package main is the entry point for the ofctl CLI client.
package main

import (
	"github.com/donaldgifford/offer-finder/cmd/ofctl/cmd"
)

func main() {
	cmd.Execute()
}
