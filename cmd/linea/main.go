// Command linea is the Linea data lineage CLI.
package main

import (
	"os"

	"github.com/linea-labs/linea/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
