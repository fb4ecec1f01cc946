// Command rebrand tracks retired terms across site content and replaces them.
package main

import (
	"os"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
