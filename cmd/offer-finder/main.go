// Package main is the entry point for the offer-finder service.
package main

import (
	"os"

	"github.com/donaldgifford/offer-finder/cmd/offer-finder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
