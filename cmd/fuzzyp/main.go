// SPDX-License-Identifier: MIT

// Command fuzzyp generates, inspects, transforms and compares fuzzy partitions
// stored as YAML or JSON documents.
package main

import (
	"os"

	"github.com/katalvlaran/fuzzypart/cmd/fuzzyp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
